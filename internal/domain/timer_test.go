package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CampusBook-Service/pkg/types"
)

func newTimerBooking(timeSlot types.Hours) *Booking {
	return &Booking{
		TimeSlot:  timeSlot,
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func TestNewCountdown_FloorDecomposition(t *testing.T) {
	b := newTimerBooking(2)

	// Осталось 1ч 29м 59с: разложение вниз, без округления
	now := b.CreatedAt.Add(30*time.Minute + time.Second)
	cd := NewCountdown(b, now, DefaultNearingExpiryWindow)

	assert.Equal(t, 1, cd.Hours)
	assert.Equal(t, 29, cd.Minutes)
	assert.Equal(t, 59, cd.Seconds)
	assert.False(t, cd.NearingExpiry)
	assert.False(t, cd.Expired)
}

func TestNewCountdown_NearingExpiryWindow(t *testing.T) {
	b := newTimerBooking(2)

	// Осталось ровно 15 минут: окно ещё не взведено
	cd := NewCountdown(b, b.CreatedAt.Add(105*time.Minute), DefaultNearingExpiryWindow)
	assert.False(t, cd.NearingExpiry)

	// Осталось 14:59: взведено
	cd = NewCountdown(b, b.CreatedAt.Add(105*time.Minute+time.Second), DefaultNearingExpiryWindow)
	assert.True(t, cd.NearingExpiry)
	assert.False(t, cd.Expired)
	assert.Equal(t, 0, cd.Hours)
	assert.Equal(t, 14, cd.Minutes)
	assert.Equal(t, 59, cd.Seconds)
}

func TestNewCountdown_Expired(t *testing.T) {
	b := newTimerBooking(1)

	cd := NewCountdown(b, b.CreatedAt.Add(time.Hour), DefaultNearingExpiryWindow)
	assert.True(t, cd.Expired)
	assert.False(t, cd.NearingExpiry)
	assert.Equal(t, 0, cd.Hours)
	assert.Equal(t, 0, cd.Minutes)
	assert.Equal(t, 0, cd.Seconds)

	cd = NewCountdown(b, b.CreatedAt.Add(2*time.Hour), DefaultNearingExpiryWindow)
	assert.True(t, cd.Expired)
	assert.Equal(t, -time.Hour, cd.Remaining)
}

func TestNewCountdown_ScenarioTwoHourSession(t *testing.T) {
	b := newTimerBooking(types.ParseHours("2"))

	// Через 1ч59м отображается 0:01:00 с предупреждением
	cd := NewCountdown(b, b.CreatedAt.Add(time.Hour+59*time.Minute), DefaultNearingExpiryWindow)
	assert.Equal(t, 0, cd.Hours)
	assert.Equal(t, 1, cd.Minutes)
	assert.Equal(t, 0, cd.Seconds)
	assert.True(t, cd.NearingExpiry)
	assert.False(t, cd.Expired)
}
