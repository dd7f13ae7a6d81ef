package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	"github.com/m04kA/SMC-DoctorService/internal/integrations/appointmentservice"
)

// DoctorRepository интерфейс репозитория врачей
type DoctorRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
}

// AppointmentServiceClient интерфейс клиента appointment-service
// Интеграция опциональна: при nil-клиенте занятые слоты не вычитаются
type AppointmentServiceClient interface {
	GetBookedIntervalsWithGracefulDegradation(ctx context.Context, doctorID int64, date time.Time) ([]appointmentservice.Interval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
