package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
	apptClient "github.com/m04kA/SMC-DoctorService/internal/integrations/appointmentservice"
)

// UseCase use case для расчёта доступных слотов врача
type UseCase struct {
	doctorRepo   DoctorRepository
	apptClient   AppointmentServiceClient // nil - интеграция выключена
	clinicHours  domain.ClinicHours
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// apptClient может быть nil: тогда возвращаются все теоретические слоты
// без вычитания занятых (поведение по умолчанию)
func NewUseCase(
	doctorRepo DoctorRepository,
	apptClient AppointmentServiceClient,
	clinicHours domain.ClinicHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo:   doctorRepo,
		apptClient:   apptClient,
		clinicHours:  clinicHours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case расчёта доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: doctor=%d, date=%s", req.DoctorID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование врача
	if _, err := uc.doctorRepo.GetByID(ctx, req.DoctorID); err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			uc.logger.Warn("CheckAvailability: doctor id=%d not found", req.DoctorID)
			return nil, ErrDoctorNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get doctor id=%d: %v", req.DoctorID, err)
		return nil, fmt.Errorf("%w: failed to get doctor: %v", ErrInternal, err)
	}

	// 3. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CheckAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, err
	}

	// 4. Генерируем теоретические слоты по часам работы клиники
	slots := generateTimeSlots(req.Date, uc.clinicHours)

	// 5. Опциональная интеграция с appointment-service: вычитаем занятые
	// интервалы. При недоступности сервиса отдаём полный список слотов
	if uc.apptClient != nil {
		booked, err := uc.apptClient.GetBookedIntervalsWithGracefulDegradation(ctx, req.DoctorID, req.Date)
		if err != nil {
			if !errors.Is(err, apptClient.ErrServiceDegraded) {
				uc.logger.Error("CheckAvailability: failed to get booked intervals: %v", err)
				return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
			}
			uc.logger.Warn("CheckAvailability: appointment-service degraded, returning full slot list for doctor=%d", req.DoctorID)
		} else {
			slots = subtractBookedIntervals(slots, booked)
		}
	}

	uc.logger.Info("CheckAvailability: generated %d slots for doctor=%d, date=%s",
		len(slots), req.DoctorID, req.Date.Format(domain.DateFormat))

	return &Response{
		DoctorID:    req.DoctorID,
		Date:        req.Date,
		Slots:       slots,
		ClinicHours: uc.clinicHours,
	}, nil
}
