package check_availability

import (
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-DoctorService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	DoctorID       int64               `json:"doctor_id"`
	Date           string              `json:"date"`
	AvailableSlots []SlotResponse      `json:"available_slots"`
	ClinicHours    ClinicHoursResponse `json:"clinic_hours"`
}

// SlotResponse модель временного слота
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ClinicHoursResponse часы работы клиники ("9:00" / "18:00")
type ClinicHoursResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(doctorID int64, dateStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &checkAvailability.Request{
		DoctorID: doctorID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
// Временные метки слотов сериализуются без зоны
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			Start: slot.Start.Format(domain.SlotTimeFormat),
			End:   slot.End.Format(domain.SlotTimeFormat),
		}
	}

	return &AvailabilityResponse{
		DoctorID:       resp.DoctorID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
		ClinicHours: ClinicHoursResponse{
			Start: resp.ClinicHours.OpenString(),
			End:   resp.ClinicHours.CloseString(),
		},
	}
}
