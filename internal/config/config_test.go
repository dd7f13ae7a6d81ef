package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Full Config", func(t *testing.T) {
		path := writeConfig(t, `
[server]
http_port = 9000
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "db.local"
port = 5432
user = "svc"
password = "secret"
dbname = "doctors"
sslmode = "disable"

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "doctor-service"

[clinic]
open_hour = 8
close_hour = 20
slot_duration_minutes = 15
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 9000, cfg.Server.HTTPPort)
		assert.Equal(t, "host=db.local port=5432 user=svc password=secret dbname=doctors sslmode=disable", cfg.Database.DSN())
		assert.Equal(t, "/metrics", cfg.Metrics.Path, "metrics path defaults when enabled")

		hours := cfg.Clinic.ToClinicHours()
		assert.Equal(t, 8, hours.OpenHour)
		assert.Equal(t, 20, hours.CloseHour)
		assert.Equal(t, 15, hours.SlotDurationMinutes)
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		path := writeConfig(t, `
[database]
host = "localhost"
port = 5432
user = "postgres"
password = "postgres"
dbname = "doctor_service"
sslmode = "disable"
`)

		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8002, cfg.Server.HTTPPort)
		assert.Equal(t, "doctor-service", cfg.Metrics.ServiceName)

		hours := cfg.Clinic.ToClinicHours()
		assert.Equal(t, 9, hours.OpenHour)
		assert.Equal(t, 18, hours.CloseHour)
		assert.Equal(t, 30, hours.SlotDurationMinutes)
	})

	t.Run("Appointment Service Needs URL", func(t *testing.T) {
		path := writeConfig(t, `
[appointment_service]
enabled = true
timeout = 5
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Invalid Clinic Hours", func(t *testing.T) {
		path := writeConfig(t, `
[clinic]
open_hour = 20
close_hour = 8
`)

		_, err := Load(path)
		assert.Error(t, err)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.Error(t, err)
	})
}
