package domain

import (
	"time"

	"github.com/m04kA/CampusBook-Service/pkg/types"
)

// BookingStatus represents the display status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
)

// StatusForArchived возвращает статус, производный от флага архивации
// Авторитетный признак жизненного цикла - isArchived, статус лишь подпись для отображения
func StatusForArchived(archived bool) BookingStatus {
	if archived {
		return StatusCompleted
	}
	return StatusConfirmed
}

// Booking represents a room/resource reservation by a student
//
// Жизненный цикл: создаётся активным (IsArchived=false), архивируется
// пользователем или фоновой очисткой после истечения, удаляется только явно
// и безвозвратно. IsArchived переходит только false -> true.
type Booking struct {
	ID          int64
	StudentName string
	BookTitle   string // может отсутствовать на старых записях
	RoomNumber  string
	TimeSlot    types.Hours
	Status      BookingStatus
	IsArchived  bool
	CreatedAt   time.Time // начало сессии, ставится один раз
}

// IsActive returns true if the booking has not been archived
func (b *Booking) IsActive() bool {
	return !b.IsArchived
}

// HasValidStart returns true if the start timestamp is usable for expiry math
func (b *Booking) HasValidStart() bool {
	return !b.CreatedAt.IsZero()
}

// ExpiresAt returns the derived expiry instant: CreatedAt + TimeSlot hours
// Значение не хранится, всегда вычисляется
func (b *Booking) ExpiresAt() time.Time {
	return b.CreatedAt.Add(b.TimeSlot.Duration())
}

// Remaining returns the time left until expiry relative to now
// Отрицательное значение означает, что сессия истекла
func (b *Booking) Remaining(now time.Time) time.Duration {
	return b.ExpiresAt().Sub(now)
}

// IsExpired returns true if now is strictly past the expiry instant
// Граница не включается: при now == ExpiresAt сессия ещё не истекла
func (b *Booking) IsExpired(now time.Time) bool {
	return now.After(b.ExpiresAt())
}
