package create_doctor

import "errors"

var (
	// ErrEmailAlreadyExists возвращается, когда врач с таким e-mail уже существует
	ErrEmailAlreadyExists = errors.New("doctor with this email already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
