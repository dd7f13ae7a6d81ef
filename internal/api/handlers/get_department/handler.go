package get_department

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
	msgNotFound        = "Doctor not found"
)

// DepartmentResponse HTTP response model
type DepartmentResponse struct {
	DoctorID   int64  `json:"doctor_id"`
	Department string `json:"department"`
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

// Handle GET /v1/doctors/{doctorId}/department
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorIDStr := vars["doctorId"]

	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/department - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	department, err := h.service.GetDepartment(r.Context(), doctorID)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/department - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /doctors/{id}/department - Failed to get department: doctor_id=%d, error=%v",
				doctorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/department - Department retrieved successfully: doctor_id=%d, department=%s",
		doctorID, department.Department)
	handlers.RespondJSON(w, http.StatusOK, DepartmentResponse{
		DoctorID:   department.DoctorID,
		Department: department.Department,
	})
}
