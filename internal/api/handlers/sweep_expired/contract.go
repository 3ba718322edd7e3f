package sweep_expired

import (
	"context"

	sweepExpired "github.com/m04kA/CampusBook-Service/internal/usecase/sweep_expired"
)

type SweepExpiredUseCase interface {
	Execute(ctx context.Context) (*sweepExpired.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
