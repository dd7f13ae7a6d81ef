package create_doctor

import "time"

// Request модель запроса на создание врача
type Request struct {
	Name           string
	Email          string
	Phone          string
	Department     string
	Specialization string
}

// Response модель созданного врача
type Response struct {
	ID             int64
	Name           string
	Email          string
	Phone          string
	Department     string
	Specialization string
	CreatedAt      time.Time
}
