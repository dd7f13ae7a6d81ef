package create_doctor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DoctorService/pkg/validate"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Department) == "" {
		return fmt.Errorf("%w: department is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Specialization) == "" {
		return fmt.Errorf("%w: specialization is required", ErrInvalidInput)
	}

	if err := validate.Email(req.Email); err != nil {
		if errors.Is(err, validate.ErrInvalidEmail) {
			return fmt.Errorf("%w: email must be a valid email address", ErrInvalidInput)
		}
		return fmt.Errorf("%w: email validation failed: %v", ErrInvalidInput, err)
	}

	return nil
}
