package sweep_expired

import (
	"time"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

// Expired возвращает подмножество активных бронирований, у которых момент
// истечения строго раньше now (now > createdAt + timeSlot)
//
// Функция чистая: вход не мутируется, возвращается новый слайс.
// Порядок результата не специфицирован - вызывающий не должен на него
// полагаться.
//
// Записи с нулевым createdAt или неположительной длительностью пропускаются:
// по ним нельзя посчитать момент истечения, и падать из-за одной битой записи
// проход не должен.
func Expired(bookings []*domain.Booking, now time.Time) []*domain.Booking {
	expired := make([]*domain.Booking, 0)

	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if !b.HasValidStart() || !b.TimeSlot.IsPositive() {
			continue
		}
		if b.IsExpired(now) {
			expired = append(expired, b)
		}
	}

	return expired
}
