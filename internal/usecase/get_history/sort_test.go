package get_history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/types"
)

var baseTime = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

func TestNaturalLess(t *testing.T) {
	// Цифровые участки сравниваются как числа
	assert.True(t, naturalLess("Lab 2", "Lab 10"))
	assert.False(t, naturalLess("Lab 10", "Lab 2"))
	assert.True(t, naturalLess("Lab 2", "Lab 3"))

	// Ведущие нули не меняют величину
	assert.False(t, naturalLess("Lab 010", "Lab 2"))

	// Регистр не учитывается
	assert.True(t, naturalLess("lab 1", "Lab 2"))

	// Чисто строковые сравнения
	assert.True(t, naturalLess("101", "BG2.233"))
	assert.False(t, naturalLess("Lab 1", "Lab 1"))
	assert.True(t, naturalLess("Lab", "Lab 1"))
}

func TestLessFold(t *testing.T) {
	assert.True(t, lessFold("alice", "Bob"))
	assert.True(t, lessFold("Alice", "bob"))
	assert.False(t, lessFold("bob", "Alice"))
}

func TestSortBookings_Date(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CreatedAt: baseTime.Add(-2 * time.Hour)},
		{ID: 2, CreatedAt: baseTime},
		{ID: 3, CreatedAt: baseTime.Add(-time.Hour)},
	}

	sortBookings(bookings, SortDateDesc)
	assert.Equal(t, []int64{2, 3, 1}, ids(bookings))

	sortBookings(bookings, SortDateAsc)
	assert.Equal(t, []int64{1, 3, 2}, ids(bookings))
}

func TestSortBookings_Room_NaturalOrder(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, RoomNumber: "Lab 10"},
		{ID: 2, RoomNumber: "Lab 2"},
		{ID: 3, RoomNumber: "101"},
	}

	sortBookings(bookings, SortRoomAsc)
	assert.Equal(t, []int64{3, 2, 1}, ids(bookings))

	sortBookings(bookings, SortRoomDesc)
	assert.Equal(t, []int64{1, 2, 3}, ids(bookings))
}

func TestSortBookings_Student_CaseInsensitive(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, StudentName: "charlie"},
		{ID: 2, StudentName: "Alice"},
		{ID: 3, StudentName: "bob"},
	}

	sortBookings(bookings, SortStudentAsc)
	assert.Equal(t, []int64{2, 3, 1}, ids(bookings))

	sortBookings(bookings, SortStudentDesc)
	assert.Equal(t, []int64{1, 3, 2}, ids(bookings))
}

func TestSortBookings_Duration(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, TimeSlot: types.Hours(2)},
		{ID: 2, TimeSlot: types.Hours(0.5)},
		{ID: 3, TimeSlot: types.Hours(1.5)},
	}

	sortBookings(bookings, SortDurationAsc)
	assert.Equal(t, []int64{2, 3, 1}, ids(bookings))

	sortBookings(bookings, SortDurationDesc)
	assert.Equal(t, []int64{1, 3, 2}, ids(bookings))
}

func TestSortBookings_UnknownKeyFallsBackToDateDesc(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, CreatedAt: baseTime.Add(-time.Hour)},
		{ID: 2, CreatedAt: baseTime},
	}

	sortBookings(bookings, "bogus-key")
	assert.Equal(t, []int64{2, 1}, ids(bookings))
}

func TestMatchesSearch(t *testing.T) {
	b := &domain.Booking{
		StudentName: "Alice Johnson",
		BookTitle:   "Introduction to Algorithms",
		RoomNumber:  "Lab 2",
	}

	assert.True(t, matchesSearch(b, "alice"))
	assert.True(t, matchesSearch(b, "ALGO"))
	assert.True(t, matchesSearch(b, "lab 2"))
	assert.True(t, matchesSearch(b, ""))
	assert.False(t, matchesSearch(b, "bob"))
}

func ids(bookings []*domain.Booking) []int64 {
	out := make([]int64, len(bookings))
	for i, b := range bookings {
		out[i] = b.ID
	}
	return out
}
