package export_report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	getHistory "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
)

var baseTime = time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeService struct {
	bookings []models.BookingResponse
	err      error
}

func (s *fakeService) List(ctx context.Context) ([]models.BookingResponse, error) {
	return s.bookings, s.err
}

type fakeHistory struct {
	resp *getHistory.Response
	err  error
}

func (f *fakeHistory) Execute(ctx context.Context, req *getHistory.Request) (*getHistory.Response, error) {
	return f.resp, f.err
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/bookings/export"+query, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_ExportAll(t *testing.T) {
	svc := &fakeService{bookings: []models.BookingResponse{
		{StudentName: "Alice", RoomNumber: "Lab 2", BookTitle: "Algorithms", TimeSlot: 2, Status: "Confirmed", CreatedAt: baseTime},
	}}
	h := NewHandler(svc, &fakeHistory{}, nopLogger{})

	rec := doRequest(h, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "bookings_report.csv")

	body := rec.Body.String()
	assert.Contains(t, body, "Student,Room,Book,Hours,Status,Date\n")
	assert.Contains(t, body, "Alice,Lab 2,Algorithms,2,Confirmed,2026-08-30\n")
}

func TestHandler_ExportHistory(t *testing.T) {
	history := &fakeHistory{resp: &getHistory.Response{Bookings: []*domain.Booking{
		{StudentName: "Bob", BookTitle: "SICP", RoomNumber: "101", TimeSlot: 1.5, Status: domain.StatusCompleted, IsArchived: true, CreatedAt: baseTime},
	}}}
	h := NewHandler(&fakeService{}, history, nopLogger{})

	rec := doRequest(h, "?scope=history")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "history_report.csv")

	body := rec.Body.String()
	assert.Contains(t, body, "Student,Book,Room,Duration (Hours),Status,Date,Time\n")
	assert.Contains(t, body, "Bob,SICP,101,1.5,Completed,2026-08-30,14:30:00\n")
}

func TestHandler_UnknownScope(t *testing.T) {
	h := NewHandler(&fakeService{}, &fakeHistory{}, nopLogger{})

	rec := doRequest(h, "?scope=bogus")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
