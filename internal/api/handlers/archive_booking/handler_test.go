package archive_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/CampusBook-Service/internal/service/bookings"
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	lastID int64
	resp   *models.BookingResponse
	err    error
}

func (s *fakeService) Archive(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(h *Handler, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/bookings/"+bookingID, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Archived(t *testing.T) {
	svc := &fakeService{resp: &models.BookingResponse{ID: 7, IsArchived: true, Status: "Completed"}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "7")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.lastID)
	assert.Contains(t, rec.Body.String(), `"isArchived":true`)
	assert.Contains(t, rec.Body.String(), `"status":"Completed"`)
}

func TestHandler_InvalidID(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int64(0), svc.lastID)
}

func TestHandler_NotFound(t *testing.T) {
	svc := &fakeService{err: bookings.ErrBookingNotFound}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "99")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_InternalError(t *testing.T) {
	svc := &fakeService{err: bookings.ErrInternal}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "7")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
