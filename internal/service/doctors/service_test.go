package doctors

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
	"github.com/m04kA/SMC-DoctorService/pkg/ptr"
)

type fakeDoctorRepo struct {
	doctors []*domain.Doctor
}

func (r *fakeDoctorRepo) GetByID(_ context.Context, id int64) (*domain.Doctor, error) {
	for _, doctor := range r.doctors {
		if doctor.ID == id {
			return doctor, nil
		}
	}
	return nil, doctorRepo.ErrDoctorNotFound
}

func (r *fakeDoctorRepo) List(_ context.Context, filter domain.DoctorFilter) ([]*domain.Doctor, error) {
	matched := r.filtered(filter)

	if filter.Skip >= int64(len(matched)) {
		return []*domain.Doctor{}, nil
	}
	matched = matched[filter.Skip:]
	if filter.Limit < int64(len(matched)) {
		matched = matched[:filter.Limit]
	}
	return matched, nil
}

func (r *fakeDoctorRepo) Count(_ context.Context, filter domain.DoctorFilter) (int64, error) {
	return int64(len(r.filtered(filter))), nil
}

func (r *fakeDoctorRepo) filtered(filter domain.DoctorFilter) []*domain.Doctor {
	matched := make([]*domain.Doctor, 0, len(r.doctors))
	for _, doctor := range r.doctors {
		if filter.Department != nil && doctor.Department != *filter.Department {
			continue
		}
		if filter.Specialization != nil && doctor.Specialization != *filter.Specialization {
			continue
		}
		matched = append(matched, doctor)
	}
	return matched
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func seedRepo() *fakeDoctorRepo {
	createdAt := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return &fakeDoctorRepo{doctors: []*domain.Doctor{
		{ID: 1, Name: "Dr. House", Email: "house@clinic.com", Phone: "+1", Department: "Diagnostics", Specialization: "Nephrology", CreatedAt: createdAt},
		{ID: 2, Name: "Dr. Wilson", Email: "wilson@clinic.com", Phone: "+2", Department: "Oncology", Specialization: "Oncology", CreatedAt: createdAt},
		{ID: 3, Name: "Dr. Chase", Email: "chase@clinic.com", Phone: "+3", Department: "Diagnostics", Specialization: "Cardiology", CreatedAt: createdAt},
	}}
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	svc := NewService(seedRepo(), noopLogger{})

	t.Run("All Doctors", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListDoctorsRequest{Skip: 0, Limit: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		require.Len(t, resp.Doctors, 3)
		assert.Equal(t, "2025-05-01T09:00:00Z", resp.Doctors[0].CreatedAt)
	})

	t.Run("Filter By Department", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListDoctorsRequest{
			Skip: 0, Limit: 100, Department: ptr.Ptr("Diagnostics"),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		assert.Len(t, resp.Doctors, 2)
	})

	t.Run("Filter By Specialization", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListDoctorsRequest{
			Skip: 0, Limit: 100, Specialization: ptr.Ptr("Cardiology"),
		})

		require.NoError(t, err)
		require.Len(t, resp.Doctors, 1)
		assert.Equal(t, "Dr. Chase", resp.Doctors[0].Name)
	})

	t.Run("Pagination Keeps Total", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListDoctorsRequest{Skip: 1, Limit: 1})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total, "total ignores pagination")
		require.Len(t, resp.Doctors, 1)
		assert.Equal(t, "Dr. Wilson", resp.Doctors[0].Name)
	})

	t.Run("Skip Beyond Total", func(t *testing.T) {
		resp, err := svc.List(ctx, &models.ListDoctorsRequest{Skip: 10, Limit: 100})

		require.NoError(t, err)
		assert.Equal(t, int64(3), resp.Total)
		assert.Empty(t, resp.Doctors)
	})

	t.Run("Negative Skip", func(t *testing.T) {
		_, err := svc.List(ctx, &models.ListDoctorsRequest{Skip: -1, Limit: 100})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Limit Out Of Range", func(t *testing.T) {
		_, err := svc.List(ctx, &models.ListDoctorsRequest{Skip: 0, Limit: 0})
		assert.ErrorIs(t, err, ErrInvalidInput)

		_, err = svc.List(ctx, &models.ListDoctorsRequest{Skip: 0, Limit: 101})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(seedRepo(), noopLogger{})

	t.Run("Found", func(t *testing.T) {
		resp, err := svc.GetByID(ctx, 2)

		require.NoError(t, err)
		assert.Equal(t, "Dr. Wilson", resp.Name)
		assert.Equal(t, "wilson@clinic.com", resp.Email)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := svc.GetByID(ctx, 999)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}

func TestService_GetDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewService(seedRepo(), noopLogger{})

	t.Run("Found", func(t *testing.T) {
		resp, err := svc.GetDepartment(ctx, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.DoctorID)
		assert.Equal(t, "Diagnostics", resp.Department)
	})

	t.Run("Not Found", func(t *testing.T) {
		_, err := svc.GetDepartment(ctx, 999)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})
}
