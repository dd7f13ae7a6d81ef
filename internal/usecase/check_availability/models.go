package check_availability

import (
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// Request модель запроса доступных слотов врача
type Request struct {
	DoctorID int64     // ID врача
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком слотов
type Response struct {
	DoctorID    int64              // ID врача
	Date        time.Time          // Запрошенная дата
	Slots       []domain.Slot      // Слоты в хронологическом порядке
	ClinicHours domain.ClinicHours // Часы работы, использованные при генерации
}
