package doctors

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "github.com/m04kA/SMC-DoctorService/internal/infra/storage/doctor"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
)

// Service сервис для чтения справочника врачей
type Service struct {
	doctorRepo DoctorRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса врачей
func NewService(doctorRepo DoctorRepository, logger Logger) *Service {
	return &Service{
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// List получает страницу врачей с фильтрацией по отделению и специализации
// Total в ответе - общее количество записей, подходящих под фильтр,
// независимо от пагинации
func (s *Service) List(ctx context.Context, req *models.ListDoctorsRequest) (*models.DoctorListResponse, error) {
	s.logger.Info("List: skip=%d, limit=%d, department=%v, specialization=%v",
		req.Skip, req.Limit, req.Department, req.Specialization)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	total, err := s.doctorRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("List: failed to count doctors: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	doctorList, err := s.doctorRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: total=%d, returned=%d", total, len(doctorList))
	return models.FromDomainDoctorList(doctorList, total), nil
}

// GetByID получает врача по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.DoctorResponse, error) {
	s.logger.Info("GetByID: fetching doctor id=%d", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetByID: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetByID: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched doctor id=%d", id)
	return models.FromDomainDoctor(doctor), nil
}

// GetDepartment получает отделение врача (для валидации в других сервисах)
func (s *Service) GetDepartment(ctx context.Context, id int64) (*models.DepartmentResponse, error) {
	s.logger.Info("GetDepartment: fetching department for doctor id=%d", id)

	doctor, err := s.doctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrDoctorNotFound) {
			s.logger.Warn("GetDepartment: doctor id=%d not found", id)
			return nil, ErrDoctorNotFound
		}
		s.logger.Error("GetDepartment: repository error for doctor id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetDepartment - repository error: %v", ErrInternal, err)
	}

	return &models.DepartmentResponse{
		DoctorID:   doctor.ID,
		Department: doctor.Department,
	}, nil
}
