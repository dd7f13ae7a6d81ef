package get_doctor

import (
	"context"

	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
)

type DoctorsService interface {
	GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
