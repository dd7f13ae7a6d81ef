package create_doctor

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
	createDoctor "github.com/m04kA/SMC-DoctorService/internal/usecase/create_doctor"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailExists        = "Doctor with this email already exists"
)

type Handler struct {
	useCase CreateDoctorUseCase
	logger  Logger
}

func NewHandler(useCase CreateDoctorUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /v1/doctors
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateDoctorRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /doctors - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createDoctor.ErrEmailAlreadyExists):
			h.logger.Warn("POST /doctors - Email already exists: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgEmailExists)

		case errors.Is(err, createDoctor.ErrInvalidInput):
			h.logger.Warn("POST /doctors - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /doctors - Failed to create doctor: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /doctors - Doctor created successfully: doctor_id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
