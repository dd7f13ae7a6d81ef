package appointmentservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что appointment-service недоступен и следует вернуть
	// полный список теоретических слотов без вычитания занятых
	ErrServiceDegraded = errors.New("appointmentservice unavailable: graceful degradation applied")
)
