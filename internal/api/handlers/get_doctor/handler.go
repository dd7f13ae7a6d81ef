package get_doctor

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors/models"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
	msgNotFound        = "Doctor not found"
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

type Handler struct {
	service DoctorsService
	logger  Logger
}

func NewHandler(service DoctorsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /v1/doctors/{doctorId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorIDStr := vars["doctorId"]

	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id} - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	doctor, err := h.service.GetByID(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id} - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /doctors/{id} - Failed to get doctor: doctor_id=%d, error=%v", doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id} - Doctor retrieved successfully: doctor_id=%d", doctorID)
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(doctor))
}

func fromServiceResponse(doctor *models.DoctorResponse) *DoctorResponse {
	return &DoctorResponse{
		DoctorID:       doctor.ID,
		Name:           doctor.Name,
		Email:          doctor.Email,
		Phone:          doctor.Phone,
		Department:     doctor.Department,
		Specialization: doctor.Specialization,
		CreatedAt:      doctor.CreatedAt,
	}
}
