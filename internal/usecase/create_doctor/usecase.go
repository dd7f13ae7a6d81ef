package create_doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
)

// UseCase use case для создания врача
type UseCase struct {
	doctorRepo DoctorRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	doctorRepo DoctorRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		doctorRepo: doctorRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case создания врача
// Проверка уникальности e-mail и вставка выполняются в сериализуемой
// транзакции; unique constraint в БД страхует от гонки между экземплярами
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDoctor: name=%s, email=%s, department=%s, specialization=%s",
		req.Name, req.Email, req.Department, req.Specialization)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDoctor: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Doctor

	// 2. Проверяем уникальность e-mail и создаём врача в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.doctorRepo.FindByEmail(txCtx, req.Email)
		if err != nil && !errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			return fmt.Errorf("%w: failed to check existing email: %v", ErrInternal, err)
		}
		if existing != nil {
			return ErrEmailAlreadyExists
		}

		created, err := uc.doctorRepo.Create(txCtx, &domain.Doctor{
			Name:           req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Department:     req.Department,
			Specialization: req.Specialization,
		})
		if err != nil {
			// Гонка между проверкой и вставкой: constraint сработал первым
			if errors.Is(err, doctorRepo.ErrDuplicateEmail) {
				return ErrEmailAlreadyExists
			}
			return fmt.Errorf("%w: failed to create doctor: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			uc.logger.Warn("CreateDoctor: email %s already exists", req.Email)
			return nil, ErrEmailAlreadyExists
		}
		uc.logger.Error("CreateDoctor: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateDoctor: successfully created doctor id=%d, name=%s", result.ID, result.Name)

	return &Response{
		ID:             result.ID,
		Name:           result.Name,
		Email:          result.Email,
		Phone:          result.Phone,
		Department:     result.Department,
		Specialization: result.Specialization,
		CreatedAt:      result.CreatedAt,
	}, nil
}
