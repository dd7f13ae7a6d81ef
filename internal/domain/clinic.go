package domain

import "fmt"

// ClinicHours represents the configured daily clinic schedule
// Явная структура вместо модульных констант: позволяет переопределять
// часы работы per-instance и в тестах
type ClinicHours struct {
	OpenHour            int // Час открытия клиники (0-23)
	CloseHour           int // Час закрытия клиники (0-23)
	SlotDurationMinutes int // Длительность одного слота в минутах
}

// DefaultClinicHours возвращает часы работы клиники по умолчанию (09:00-18:00, слот 30 минут)
func DefaultClinicHours() ClinicHours {
	return ClinicHours{
		OpenHour:            DefaultClinicOpenHour,
		CloseHour:           DefaultClinicCloseHour,
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// Validate проверяет согласованность конфигурации часов работы
func (c ClinicHours) Validate() error {
	if c.OpenHour < 0 || c.OpenHour > 23 {
		return fmt.Errorf("clinic hours: open hour %d out of range [0, 23]", c.OpenHour)
	}
	if c.CloseHour < 0 || c.CloseHour > 24 {
		return fmt.Errorf("clinic hours: close hour %d out of range [0, 24]", c.CloseHour)
	}
	if c.OpenHour >= c.CloseHour {
		return fmt.Errorf("clinic hours: open hour %d must be before close hour %d", c.OpenHour, c.CloseHour)
	}
	if c.SlotDurationMinutes < MinSlotDurationMinutes || c.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("clinic hours: slot duration %d out of range [%d, %d]",
			c.SlotDurationMinutes, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}
	return nil
}

// OpenString возвращает час открытия в коротком формате ("9:00")
func (c ClinicHours) OpenString() string {
	return fmt.Sprintf("%d:00", c.OpenHour)
}

// CloseString возвращает час закрытия в коротком формате ("18:00")
func (c ClinicHours) CloseString() string {
	return fmt.Sprintf("%d:00", c.CloseHour)
}
