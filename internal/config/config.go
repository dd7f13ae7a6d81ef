package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server             ServerConfig             `toml:"server"`
	Database           DatabaseConfig           `toml:"database"`
	Logs               LogsConfig               `toml:"logs"`
	Metrics            MetricsConfig            `toml:"metrics"`
	Clinic             ClinicConfig             `toml:"clinic"`
	AppointmentService AppointmentServiceConfig `toml:"appointment_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ClinicConfig часы работы клиники и длительность слота
type ClinicConfig struct {
	OpenHour            int `toml:"open_hour"`
	CloseHour           int `toml:"close_hour"`
	SlotDurationMinutes int `toml:"slot_duration_minutes"`
}

// ToClinicHours конвертирует секцию конфига в доменную структуру
// Незаполненные поля заменяются значениями по умолчанию
func (c ClinicConfig) ToClinicHours() domain.ClinicHours {
	hours := domain.DefaultClinicHours()
	if c.OpenHour != 0 {
		hours.OpenHour = c.OpenHour
	}
	if c.CloseHour != 0 {
		hours.CloseHour = c.CloseHour
	}
	if c.SlotDurationMinutes != 0 {
		hours.SlotDurationMinutes = c.SlotDurationMinutes
	}
	return hours
}

// AppointmentServiceConfig настройки интеграции с appointment-service
// По умолчанию интеграция выключена: сервис не имеет данных о реальных
// записях и возвращает все теоретические слоты
type AppointmentServiceConfig struct {
	Enabled bool   `toml:"enabled"`
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Load загружает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8002
	}
	if cfg.Metrics.Enabled && cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "doctor-service"
	}
	if cfg.AppointmentService.Enabled && cfg.AppointmentService.URL == "" {
		return nil, fmt.Errorf("config: appointment_service.url is required when integration is enabled")
	}

	if err := cfg.Clinic.ToClinicHours().Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
