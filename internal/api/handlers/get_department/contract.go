package get_department

import (
	"context"

	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
)

type DoctorsService interface {
	GetDepartment(ctx context.Context, id int64) (*models.DepartmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
