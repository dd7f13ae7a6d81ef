package check_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-DoctorService/internal/usecase/check_availability"
)

const (
	msgInvalidDoctorID = "invalid doctor ID"
	msgMissingDate     = "date query parameter is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgDoctorNotFound  = "Doctor not found"
	msgDateInPast      = "Cannot book in the past"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /v1/doctors/{doctorId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctorIDStr := vars["doctorId"]
	doctorID, err := strconv.ParseInt(doctorIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid doctor ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDoctorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /doctors/{id}/availability - Missing date: doctor_id=%d", doctorID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(doctorID, dateStr)
	if err != nil {
		h.logger.Warn("GET /doctors/{id}/availability - Invalid date format: date=%s, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrDoctorNotFound):
			h.logger.Warn("GET /doctors/{id}/availability - Doctor not found: doctor_id=%d", doctorID)
			handlers.RespondNotFound(w, msgDoctorNotFound)

		case errors.Is(err, checkAvailability.ErrDateInPast):
			h.logger.Warn("GET /doctors/{id}/availability - Date in past: doctor_id=%d, date=%s", doctorID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /doctors/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /doctors/{id}/availability - Failed to check availability: doctor_id=%d, date=%s, error=%v",
				doctorID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors/{id}/availability - Availability checked successfully: doctor_id=%d, date=%s, slots_available=%d",
		doctorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
