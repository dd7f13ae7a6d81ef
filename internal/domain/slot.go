package domain

import "time"

// Slot represents a computed appointment window
// Слоты не хранятся в БД и пересчитываются на каждый запрос
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps returns true if the slot really intersects the [start, end) interval
// Интервалы, граничащие друг с другом, пересечением не считаются
func (s Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && s.End.After(start)
}
