package check_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DoctorID <= 0 {
		return fmt.Errorf("%w: doctorID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом относительно серверного времени
func validateDate(requestDate, now time.Time) error {
	if isDateInPast(requestDate, now) {
		return ErrDateInPast
	}
	return nil
}
