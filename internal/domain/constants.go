package domain

// Default clinic configuration values
const (
	DefaultClinicOpenHour      = 9  // 9 AM
	DefaultClinicCloseHour     = 18 // 6 PM
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	MinListLimit     = 1
	MaxListLimit     = 100
	DefaultListLimit = 100
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	SlotTimeFormat = "2006-01-02T15:04:05" // Формат временных меток слотов (без зоны)
)
