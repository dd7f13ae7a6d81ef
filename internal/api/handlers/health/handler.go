package health

import (
	"net/http"

	"github.com/m04kA/SMC-DoctorService/internal/api/handlers"
)

// HealthResponse модель ответа liveness-пробы
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type Handler struct {
	serviceName string
}

func NewHandler(serviceName string) *Handler {
	return &Handler{serviceName: serviceName}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.serviceName,
	})
}
