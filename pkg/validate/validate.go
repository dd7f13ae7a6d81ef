package validate

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidEmail возвращается при синтаксически некорректном e-mail адресе
	ErrInvalidEmail = errors.New("invalid email address")
)

var validate = validator.New()

// Email проверяет, что строка является синтаксически корректным e-mail адресом
// Предикат не привязан к парсингу HTTP запросов и переиспользуется
// на любом уровне (usecase, сервисы, тесты)
func Email(email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}
