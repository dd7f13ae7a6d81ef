package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// Request модели

// ListDoctorsRequest запрос на получение страницы врачей
type ListDoctorsRequest struct {
	Skip           int64
	Limit          int64
	Department     *string
	Specialization *string
}

// ToDomainFilter конвертирует запрос в доменный фильтр с валидацией пагинации
func (r *ListDoctorsRequest) ToDomainFilter() (domain.DoctorFilter, error) {
	if r.Skip < 0 {
		return domain.DoctorFilter{}, fmt.Errorf("skip must be >= 0, got %d", r.Skip)
	}
	if r.Limit < domain.MinListLimit || r.Limit > domain.MaxListLimit {
		return domain.DoctorFilter{}, fmt.Errorf("limit must be in [%d, %d], got %d",
			domain.MinListLimit, domain.MaxListLimit, r.Limit)
	}

	return domain.DoctorFilter{
		Department:     r.Department,
		Specialization: r.Specialization,
		Skip:           r.Skip,
		Limit:          r.Limit,
	}, nil
}

// Response модели

// DoctorResponse модель врача
type DoctorResponse struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Department     string
	Specialization string
	CreatedAt      string // RFC3339
}

// DoctorListResponse страница врачей с общим количеством подходящих записей
type DoctorListResponse struct {
	Doctors []DoctorResponse
	Total   int64
}

// DepartmentResponse отделение врача
type DepartmentResponse struct {
	DoctorID   int64
	Department string
}

// FromDomainDoctor конвертирует доменную модель врача в ответ сервиса
func FromDomainDoctor(doctor *domain.Doctor) *DoctorResponse {
	return &DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Department:     doctor.Department,
		Specialization: doctor.Specialization,
		CreatedAt:      doctor.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainDoctorList конвертирует список врачей в ответ сервиса
func FromDomainDoctorList(doctorList []*domain.Doctor, total int64) *DoctorListResponse {
	doctors := make([]DoctorResponse, len(doctorList))
	for i, doctor := range doctorList {
		doctors[i] = *FromDomainDoctor(doctor)
	}

	return &DoctorListResponse{
		Doctors: doctors,
		Total:   total,
	}
}
