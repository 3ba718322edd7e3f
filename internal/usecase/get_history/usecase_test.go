package get_history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	bookings  []*domain.Booking
	getAllErr error
}

func (r *fakeRepo) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	if r.getAllErr != nil {
		return nil, r.getAllErr
	}
	return r.bookings, nil
}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 1, StudentName: "Alice", RoomNumber: "Lab 10", IsArchived: true, CreatedAt: baseTime.Add(-time.Hour)},
		{ID: 2, StudentName: "Bob", RoomNumber: "Lab 2", IsArchived: true, CreatedAt: baseTime},
		{ID: 3, StudentName: "Carol", RoomNumber: "101", IsArchived: false, CreatedAt: baseTime},
	}}

	uc := NewUseCase(repo, nopLogger{})

	// Только архив, в натуральном порядке комнат
	resp, err := uc.Execute(context.Background(), &Request{SortBy: SortRoomAsc})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(resp.Bookings))

	// Фильтр применяется после сортировки и не трогает активные записи
	resp, err = uc.Execute(context.Background(), &Request{Search: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(resp.Bookings))

	resp, err = uc.Execute(context.Background(), &Request{Search: "no-such"})
	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestUseCase_Execute_DefaultSortIsDateDesc(t *testing.T) {
	repo := &fakeRepo{bookings: []*domain.Booking{
		{ID: 1, IsArchived: true, CreatedAt: baseTime.Add(-2 * time.Hour)},
		{ID: 2, IsArchived: true, CreatedAt: baseTime},
		{ID: 3, IsArchived: true, CreatedAt: baseTime.Add(-time.Hour)},
	}}

	uc := NewUseCase(repo, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3, 1}, ids(resp.Bookings))
}

func TestUseCase_Execute_FetchError(t *testing.T) {
	repo := &fakeRepo{getAllErr: errors.New("db down")}

	uc := NewUseCase(repo, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
