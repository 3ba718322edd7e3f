package sweep_expired

import (
	"context"
	"fmt"
)

// UseCase use case пакетной архивации истёкших сессий
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет один проход очистки: читает полный снимок, находит
// истёкшие активные записи и архивирует их по одной, последовательно
//
// Отказ отдельной архивации не прерывает проход: оставшиеся записи всё равно
// обрабатываются, отказы собираются в результат. Атомарности по батчу нет -
// итоговое состояние равно подмножеству успешных архиваций.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()

	bookings, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("SweepExpired: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
	}

	expired := Expired(bookings, now)
	uc.logger.Info("SweepExpired: %d of %d bookings past expiry", len(expired), len(bookings))

	result := &Result{
		ExpiredCount: len(expired),
		ArchivedIDs:  make([]int64, 0, len(expired)),
	}

	for _, b := range expired {
		if err := uc.bookingRepo.Archive(ctx, b.ID); err != nil {
			uc.logger.Warn("SweepExpired: failed to archive booking id=%d: %v", b.ID, err)
			result.Failed = append(result.Failed, FailedArchive{
				BookingID: b.ID,
				Reason:    err.Error(),
			})
			continue
		}
		result.ArchivedIDs = append(result.ArchivedIDs, b.ID)
	}

	uc.logger.Info("SweepExpired: archived %d, failed %d", len(result.ArchivedIDs), len(result.Failed))
	return result, nil
}
