package create_doctor

import (
	"context"

	createDoctor "github.com/m04kA/SMC-DoctorService/internal/usecase/create_doctor"
)

type CreateDoctorUseCase interface {
	Execute(ctx context.Context, req *createDoctor.Request) (*createDoctor.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
