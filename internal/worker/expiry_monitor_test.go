package worker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/types"
)

var baseTime = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func TestCountBookings(t *testing.T) {
	warnWindow := 15 * time.Minute
	now := baseTime.Add(110 * time.Minute)

	bookings := []*domain.Booking{
		// Активна, до истечения 10 минут: nearing
		{ID: 1, TimeSlot: types.Hours(2), CreatedAt: baseTime},
		// Активна, истекла
		{ID: 2, TimeSlot: types.Hours(1), CreatedAt: baseTime},
		// Активна, запаса ещё много
		{ID: 3, TimeSlot: types.Hours(5), CreatedAt: baseTime},
		// Архивная: не участвует в таймерах
		{ID: 4, TimeSlot: types.Hours(1), CreatedAt: baseTime, IsArchived: true},
		// Битая запись без точки истечения: только в active
		{ID: 5, TimeSlot: types.Hours(2)},
		{ID: 6, TimeSlot: 0, CreatedAt: baseTime},
	}

	counts := CountBookings(bookings, now, warnWindow)

	assert.Equal(t, 5, counts.Active)
	assert.Equal(t, 1, counts.Archived)
	assert.Equal(t, 1, counts.Expired)
	assert.Equal(t, 1, counts.NearingExpiry)
}

func TestCountBookings_ZeroRemainingShownAsExpired(t *testing.T) {
	b := &domain.Booking{ID: 1, TimeSlot: types.Hours(1), CreatedAt: baseTime}

	// При нулевом остатке таймер уже показывает "истекло"
	counts := CountBookings([]*domain.Booking{b}, baseTime.Add(time.Hour), 15*time.Minute)
	assert.Equal(t, 1, counts.Expired)
	assert.Equal(t, 0, counts.NearingExpiry)
}

func TestCountBookings_Empty(t *testing.T) {
	counts := CountBookings(nil, baseTime, 15*time.Minute)
	assert.Equal(t, Counts{}, counts)
}
