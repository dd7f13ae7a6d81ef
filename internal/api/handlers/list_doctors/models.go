package list_doctors

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
)

// DoctorResponse HTTP модель врача
type DoctorResponse struct {
	DoctorID       int64  `json:"doctor_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	CreatedAt      string `json:"created_at"`
}

// ToServiceRequest парсит query-параметры в запрос сервиса
// Отсутствующие skip/limit получают значения по умолчанию (0 и DefaultListLimit)
func ToServiceRequest(query url.Values) (*models.ListDoctorsRequest, error) {
	req := &models.ListDoctorsRequest{
		Skip:  0,
		Limit: domain.DefaultListLimit,
	}

	if skipStr := query.Get("skip"); skipStr != "" {
		skip, err := strconv.ParseInt(skipStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid skip parameter: %w", err)
		}
		req.Skip = skip
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid limit parameter: %w", err)
		}
		req.Limit = limit
	}

	if department := query.Get("department"); department != "" {
		req.Department = &department
	}

	if specialization := query.Get("specialization"); specialization != "" {
		req.Specialization = &specialization
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP массив
// Внешний контракт - голый JSON-массив врачей, total остаётся в логах
func FromServiceResponse(resp *models.DoctorListResponse) []DoctorResponse {
	doctors := make([]DoctorResponse, len(resp.Doctors))
	for i, doctor := range resp.Doctors {
		doctors[i] = DoctorResponse{
			DoctorID:       doctor.ID,
			Name:           doctor.Name,
			Email:          doctor.Email,
			Phone:          doctor.Phone,
			Department:     doctor.Department,
			Specialization: doctor.Specialization,
			CreatedAt:      doctor.CreatedAt,
		}
	}
	return doctors
}
