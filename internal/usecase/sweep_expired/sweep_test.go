package sweep_expired

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/types"
)

var baseTime = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func booking(id int64, timeSlot types.Hours, createdAt time.Time, archived bool) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		TimeSlot:   timeSlot,
		CreatedAt:  createdAt,
		IsArchived: archived,
	}
}

func TestExpired_StrictBoundary(t *testing.T) {
	b := booking(1, 2, baseTime, false)
	expiresAt := baseTime.Add(2 * time.Hour)

	// В момент истечения запись ещё не подлежит архивации
	assert.Empty(t, Expired([]*domain.Booking{b}, expiresAt))

	got := Expired([]*domain.Booking{b}, expiresAt.Add(time.Second))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestExpired_SkipsArchived(t *testing.T) {
	b := booking(1, 1, baseTime, true)

	assert.Empty(t, Expired([]*domain.Booking{b}, baseTime.Add(5*time.Hour)))
}

func TestExpired_SkipsRecordsWithoutExpiryPoint(t *testing.T) {
	now := baseTime.Add(10 * time.Hour)

	noStart := booking(1, 2, time.Time{}, false)
	zeroSlot := booking(2, 0, baseTime, false)
	negativeSlot := booking(3, -1, baseTime, false)
	valid := booking(4, 2, baseTime, false)

	got := Expired([]*domain.Booking{noStart, zeroSlot, negativeSlot, valid}, now)
	require.Len(t, got, 1)
	assert.Equal(t, int64(4), got[0].ID)
}

func TestExpired_DoesNotMutateInput(t *testing.T) {
	b := booking(1, 1, baseTime, false)

	got := Expired([]*domain.Booking{b}, baseTime.Add(2*time.Hour))
	require.Len(t, got, 1)

	assert.False(t, b.IsArchived)
	assert.Equal(t, domain.BookingStatus(""), b.Status)
}

func TestExpired_Empty(t *testing.T) {
	assert.Empty(t, Expired(nil, baseTime))
	assert.Empty(t, Expired([]*domain.Booking{}, baseTime))
}
