package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-DoctorService/internal/integrations/appointmentservice"
)

type fakeDoctorRepo struct {
	doctors map[int64]*domain.Doctor
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	doctor, ok := r.doctors[id]
	if !ok {
		return nil, doctorRepo.ErrDoctorNotFound
	}
	return doctor, nil
}

type fakeAppointmentClient struct {
	intervals []appointmentservice.Interval
	err       error
}

func (c *fakeAppointmentClient) GetBookedIntervalsWithGracefulDegradation(_ context.Context, _ int64, _ time.Time) ([]appointmentservice.Interval, error) {
	return c.intervals, c.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo DoctorRepository, client AppointmentServiceClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, client, domain.DefaultClinicHours(), noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeDoctorRepo{doctors: map[int64]*domain.Doctor{
		1: {ID: 1, Name: "Dr. House", Email: "house@clinic.com", Department: "Diagnostics"},
	}}

	t.Run("Success Returns Full Slot Grid", func(t *testing.T) {
		uc := newTestUseCase(repo, nil, now)
		date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		resp, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: date})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.DoctorID)
		assert.Equal(t, date, resp.Date)
		assert.Len(t, resp.Slots, 18)
		assert.Equal(t, domain.DefaultClinicHours(), resp.ClinicHours)
	})

	t.Run("Doctor Not Found", func(t *testing.T) {
		uc := newTestUseCase(repo, nil, now)

		_, err := uc.Execute(ctx, &Request{DoctorID: 999, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})

		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("Date In Past", func(t *testing.T) {
		uc := newTestUseCase(repo, nil, now)

		_, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)})

		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("Today Is Allowed", func(t *testing.T) {
		uc := newTestUseCase(repo, nil, now)

		resp, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 18)
	})

	t.Run("Today Is Allowed On Non UTC Server", func(t *testing.T) {
		// Серверное время сразу после локальной полуночи западнее Гринвича,
		// дата запроса распарсена в UTC
		loc := time.FixedZone("UTC-5", -5*60*60)
		localNow := time.Date(2025, 6, 1, 0, 30, 0, 0, loc)
		uc := newTestUseCase(repo, nil, localNow)

		resp, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 18)
	})

	t.Run("Invalid Doctor ID", func(t *testing.T) {
		uc := newTestUseCase(repo, nil, now)

		_, err := uc.Execute(ctx, &Request{DoctorID: 0, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Booked Intervals Are Subtracted", func(t *testing.T) {
		client := &fakeAppointmentClient{intervals: []appointmentservice.Interval{{
			Start: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		}}}
		uc := newTestUseCase(repo, client, now)

		resp, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 16)
		assert.Equal(t, time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC), resp.Slots[0].Start)
	})

	t.Run("Degraded Integration Falls Back To Full Grid", func(t *testing.T) {
		client := &fakeAppointmentClient{err: appointmentservice.ErrServiceDegraded}
		uc := newTestUseCase(repo, client, now)

		resp, err := uc.Execute(ctx, &Request{DoctorID: 1, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)})

		require.NoError(t, err)
		assert.Len(t, resp.Slots, 18, "degraded appointment-service should not fail the request")
	})
}
