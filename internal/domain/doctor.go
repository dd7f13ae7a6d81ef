package domain

import "time"

// Doctor represents a doctor profile in the directory
type Doctor struct {
	ID             int64
	Name           string
	Email          string // уникален среди всех врачей
	Phone          string
	Department     string
	Specialization string
	CreatedAt      time.Time
}

// DoctorFilter фильтр и пагинация для выборки врачей
// Nil-поля означают отсутствие ограничения по этому полю
type DoctorFilter struct {
	Department     *string // Точное совпадение отделения (опционально)
	Specialization *string // Точное совпадение специализации (опционально)
	Skip           int64   // Смещение выборки, >= 0
	Limit          int64   // Размер страницы, [1, MaxListLimit]
}
