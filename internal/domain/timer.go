package domain

import "time"

// Countdown производное состояние таймера сессии на момент now
// Чистое значение для отображения, не меняет хранимую запись
type Countdown struct {
	Hours   int
	Minutes int
	Seconds int

	Remaining time.Duration

	// NearingExpiry взводится, когда до истечения осталось меньше окна
	// предупреждения. Чисто презентационный признак
	NearingExpiry bool

	// Expired означает, что сессия прошла точку истечения
	// Признак консультативный: запись меняется только операцией архивации
	Expired bool
}

// NewCountdown вычисляет состояние таймера бронирования
// Разложение остатка на часы/минуты/секунды выполняется с floor-семантикой,
// без округления вверх
func NewCountdown(b *Booking, now time.Time, warnWindow time.Duration) Countdown {
	remaining := b.Remaining(now)

	if remaining <= 0 {
		return Countdown{Remaining: remaining, Expired: true}
	}

	return Countdown{
		Hours:         int(remaining / time.Hour),
		Minutes:       int((remaining % time.Hour) / time.Minute),
		Seconds:       int((remaining % time.Minute) / time.Second),
		Remaining:     remaining,
		NearingExpiry: remaining < warnWindow,
	}
}
