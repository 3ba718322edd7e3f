package sweep_expired

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	sweepExpired "github.com/m04kA/CampusBook-Service/internal/usecase/sweep_expired"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	result *sweepExpired.Result
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context) (*sweepExpired.Result, error) {
	return f.result, f.err
}

func TestHandler_PartialFailureIsStillOK(t *testing.T) {
	uc := &fakeUseCase{result: &sweepExpired.Result{
		ExpiredCount: 3,
		ArchivedIDs:  []int64{1, 3},
		Failed: []sweepExpired.FailedArchive{
			{BookingID: 2, Reason: "connection reset"},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/sweep", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"expiredCount": 3,
		"archivedIds": [1, 3],
		"failed": [{"bookingId": 2, "reason": "connection reset"}]
	}`, rec.Body.String())
}

func TestHandler_NothingToSweep(t *testing.T) {
	uc := &fakeUseCase{result: &sweepExpired.Result{}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/sweep", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"expiredCount": 0, "archivedIds": [], "failed": []}`, rec.Body.String())
}

func TestHandler_SnapshotError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("db down")}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/bookings/sweep", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
