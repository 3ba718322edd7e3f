package worker

import (
	"context"
	"time"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	sweepExpired "github.com/m04kA/CampusBook-Service/internal/usecase/sweep_expired"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*domain.Booking, error)
}

// SweepUseCase интерфейс прохода автоархивации
type SweepUseCase interface {
	Execute(ctx context.Context) (*sweepExpired.Result, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
