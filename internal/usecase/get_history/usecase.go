package get_history

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

// ErrInternal возвращается при ошибке чтения снимка коллекции
var ErrInternal = errors.New("get_history: internal error")

// Request параметры отображения истории
type Request struct {
	SortBy string // один из ключей сортировки; пустой или неизвестный = date-desc
	Search string // подстрочный фильтр; пустой = без фильтрации
}

// Response отсортированная и отфильтрованная история
type Response struct {
	Bookings []*domain.Booking
}

// UseCase use case представления истории (архивное подмножество)
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute строит представление истории: берёт архивное подмножество,
// сортирует его целиком, затем применяет фильтр видимости
//
// Сортировка определяет порядок всего архивного набора; фильтр лишь убирает
// записи из выдачи и порядок не пересчитывает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	bookings, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetHistory: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
	}

	archived := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsArchived {
			archived = append(archived, b)
		}
	}

	sortBookings(archived, req.SortBy)

	visible := archived
	if req.Search != "" {
		visible = make([]*domain.Booking, 0, len(archived))
		for _, b := range archived {
			if matchesSearch(b, req.Search) {
				visible = append(visible, b)
			}
		}
	}

	uc.logger.Info("GetHistory: %d archived, %d visible (sortBy=%q, search=%q)",
		len(archived), len(visible), req.SortBy, req.Search)

	return &Response{Bookings: visible}, nil
}
