package appointmentservice

import (
	"fmt"
	"time"
)

// appointmentTimeFormat формат временных меток appointment-service (без зоны)
const appointmentTimeFormat = "2006-01-02T15:04:05"

// Appointment модель записи из appointment-service
type Appointment struct {
	ID       int64  `json:"appointment_id"`
	DoctorID int64  `json:"doctor_id"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Status   string `json:"status"`
}

// appointmentsResponse модель ответа со списком записей
type appointmentsResponse struct {
	Appointments []Appointment `json:"appointments"`
}

// ErrorResponse модель ошибки от appointment-service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Interval занятый временной интервал врача
type Interval struct {
	Start time.Time
	End   time.Time
}

// ToInterval парсит временные метки записи в занятый интервал
func (a Appointment) ToInterval() (Interval, error) {
	start, err := time.Parse(appointmentTimeFormat, a.Start)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid appointment start %q: %v", ErrInvalidResponse, a.Start, err)
	}
	end, err := time.Parse(appointmentTimeFormat, a.End)
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid appointment end %q: %v", ErrInvalidResponse, a.End, err)
	}
	return Interval{Start: start, End: end}, nil
}
