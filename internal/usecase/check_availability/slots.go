package check_availability

import (
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
	"github.com/m04kA/SMC-DoctorService/internal/integrations/appointmentservice"
)

// generateTimeSlots генерирует все теоретические слоты на день
// Слоты идут с начала работы клиники с фиксированным шагом; слот,
// конец которого вышел бы за время закрытия, не генерируется.
// Чистая функция даты и конфигурации: одинаковые аргументы дают
// идентичный список
func generateTimeSlots(date time.Time, hours domain.ClinicHours) []domain.Slot {
	openTime := time.Date(date.Year(), date.Month(), date.Day(), hours.OpenHour, 0, 0, 0, date.Location())
	closeTime := time.Date(date.Year(), date.Month(), date.Day(), hours.CloseHour, 0, 0, 0, date.Location())
	step := time.Duration(hours.SlotDurationMinutes) * time.Minute

	slots := make([]domain.Slot, 0)
	current := openTime

	for current.Before(closeTime) {
		end := current.Add(step)
		if end.After(closeTime) {
			break
		}
		slots = append(slots, domain.Slot{Start: current, End: end})
		current = end
	}

	return slots
}

// subtractBookedIntervals убирает слоты, пересекающиеся с занятыми интервалами
// Слоты, граничащие с записью, остаются доступными
func subtractBookedIntervals(slots []domain.Slot, booked []appointmentservice.Interval) []domain.Slot {
	if len(booked) == 0 {
		return slots
	}

	available := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		overlaps := false
		for _, interval := range booked {
			if slot.Overlaps(interval.Start, interval.End) {
				overlaps = true
				break
			}
		}
		if !overlaps {
			available = append(available, slot)
		}
	}

	return available
}

// isDateInPast проверяет, что дата строго раньше сегодняшнего дня
// Сравниваются календарные компоненты, а не моменты времени: запрошенная
// дата приходит без зоны (UTC после парсинга), а серверное время локальное
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
