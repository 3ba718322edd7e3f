package get_statistics

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

// ErrInternal возвращается при ошибке чтения снимка коллекции
var ErrInternal = errors.New("get_statistics: internal error")

// Количество записей в блоке недавней активности
const recentLimit = 5

// UseCase use case расчёта агрегатов дашборда
type UseCase struct {
	bookingRepo BookingRepository
	rooms       map[string]int // статическая таблица комната -> вместимость
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, rooms map[string]int, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		rooms:       rooms,
		logger:      logger,
	}
}

// Execute читает полный снимок и считает все производные представления
// Каждый вызов - независимый пересчёт, предыдущее состояние не используется
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	bookings, err := uc.bookingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetStatistics: failed to fetch bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch bookings: %v", ErrInternal, err)
	}

	resp := Compute(bookings, uc.rooms)

	uc.logger.Info("GetStatistics: total=%d, active=%d, archived=%d",
		resp.Total, resp.Active, resp.Archived)
	return resp, nil
}

// Compute собирает все агрегаты по готовому снимку
// Чистая функция, вынесена отдельно от Execute для пересчёта без похода в БД
func Compute(bookings []*domain.Booking, rooms map[string]int) *Response {
	total, active, archived := countBookings(bookings)
	long, short := durationBuckets(bookings)

	activeSet := make([]*domain.Booking, 0, active)
	for _, b := range bookings {
		if b.IsActive() {
			activeSet = append(activeSet, b)
		}
	}

	archivedSet := archivedSubset(bookings)

	students := make([]string, 0, len(archivedSet))
	roomsUsed := make([]string, 0, len(archivedSet))
	for _, b := range archivedSet {
		students = append(students, b.StudentName)
		roomsUsed = append(roomsUsed, b.RoomNumber)
	}

	return &Response{
		Total:         total,
		Active:        active,
		Archived:      archived,
		LongSessions:  long,
		ShortSessions: short,
		AverageHours:  averageDuration(bookings),
		RoomLoads:     domain.ComputeRoomLoads(rooms, activeSet),
		Recent:        recentBookings(bookings, recentLimit),
		History: HistoryStats{
			Completed:         len(archivedSet),
			TotalHours:        totalHours(archivedSet),
			AverageHours:      averageDuration(archivedSet),
			MostActiveStudent: mostFrequent(students),
			MostUsedRoom:      mostFrequent(roomsUsed),
		},
	}
}
