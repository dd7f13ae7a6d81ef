package list_doctors

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	"github.com/m04kA/SMC-DoctorService/internal/service/doctors"
)

const (
	msgInvalidQuery      = "invalid query parameters"
	msgInvalidPagination = "skip must be >= 0 and limit must be in [1, 100]"
)

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

// Handle GET /v1/doctors
// Query params: skip, limit, department, specialization (все опциональны)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /doctors - Invalid query parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, doctors.ErrInvalidInput):
			h.logger.Warn("GET /doctors - Invalid pagination: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPagination)

		default:
			h.logger.Error("GET /doctors - Failed to list doctors: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /doctors - Doctors retrieved successfully: total=%d, returned=%d",
		result.Total, len(result.Doctors))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
