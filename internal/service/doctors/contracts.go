package doctors

import (
	"context"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context, filter domain.DoctorFilter) ([]*domain.Doctor, error)
	Count(ctx context.Context, filter domain.DoctorFilter) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
