package appointmentservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-DoctorService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с appointment-service
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента appointment-service
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookedIntervals получает занятые интервалы врача на указанную дату
func (c *Client) GetBookedIntervals(ctx context.Context, doctorID int64, date time.Time) ([]Interval, error) {
	url := fmt.Sprintf("%s/internal/doctors/%d/appointments?date=%s",
		c.baseURL, doctorID, date.Format(domain.DateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Сервис не знает этого врача - записей нет
		return []Interval{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload appointmentsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]Interval, 0, len(payload.Appointments))
	for _, appointment := range payload.Appointments {
		interval, err := appointment.ToInterval()
		if err != nil {
			return nil, err
		}
		intervals = append(intervals, interval)
	}

	return intervals, nil
}

// GetBookedIntervalsWithGracefulDegradation получает занятые интервалы врача с graceful degradation
// При недоступности appointment-service возвращает ErrServiceDegraded: вызывающая
// сторона в этом случае отдаёт полный список слотов без вычитания занятых
func (c *Client) GetBookedIntervalsWithGracefulDegradation(ctx context.Context, doctorID int64, date time.Time) ([]Interval, error) {
	c.log.Info("Fetching booked intervals for doctor_id=%d, date=%s", doctorID, date.Format(domain.DateFormat))

	intervals, err := c.GetBookedIntervals(ctx, doctorID, date)
	if err != nil {
		// Любая ошибка (недоступность сервиса, timeout, ошибки парсинга)
		// приводит к graceful degradation. Уровень ERROR, чтобы быстрее
		// заметить проблему интеграции.
		c.log.Error("AppointmentService unavailable, applying graceful degradation for doctor_id=%d: %v", doctorID, err)
		return nil, fmt.Errorf("%w: doctor_id=%d, error=%v", ErrServiceDegraded, doctorID, err)
	}

	c.log.Info("Successfully fetched %d booked intervals for doctor_id=%d", len(intervals), doctorID)
	return intervals, nil
}
