package create_doctor

import (
	"time"

	createDoctor "github.com/m04kA/SMC-DoctorService/internal/usecase/create_doctor"
)

// CreateDoctorRequest HTTP request model
type CreateDoctorRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
}

// DoctorResponse HTTP response model
type DoctorResponse struct {
	DoctorID       int64  `json:"doctor_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Department     string `json:"department"`
	Specialization string `json:"specialization"`
	CreatedAt      string `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateDoctorRequest) ToUseCaseRequest() *createDoctor.Request {
	return &createDoctor.Request{
		Name:           r.Name,
		Email:          r.Email,
		Phone:          r.Phone,
		Department:     r.Department,
		Specialization: r.Specialization,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createDoctor.Response) *DoctorResponse {
	return &DoctorResponse{
		DoctorID:       resp.ID,
		Name:           resp.Name,
		Email:          resp.Email,
		Phone:          resp.Phone,
		Department:     resp.Department,
		Specialization: resp.Specialization,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
	}
}
