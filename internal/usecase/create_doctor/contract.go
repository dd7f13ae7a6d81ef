package create_doctor

import (
	"context"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*domain.Doctor, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
