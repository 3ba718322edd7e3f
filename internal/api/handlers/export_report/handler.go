package export_report

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/m04kA/CampusBook-Service/internal/api/handlers"
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	getHistory "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
)

const (
	scopeAll     = "all"
	scopeHistory = "history"

	msgInvalidScope = "некорректный параметр scope"
)

type Handler struct {
	service BookingService
	history GetHistoryUseCase
	logger  Logger
}

func NewHandler(service BookingService, history GetHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		service: service,
		history: history,
		logger:  logger,
	}
}

// Handle GET /api/bookings/export?scope=all|history
// Отдаёт CSV файл. Пустой scope трактуется как all
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scope := r.URL.Query().Get("scope")
	if scope == "" {
		scope = scopeAll
	}

	switch scope {
	case scopeAll:
		h.exportAll(w, r)
	case scopeHistory:
		h.exportHistory(w, r)
	default:
		h.logger.Warn("GET /bookings/export - Unknown scope: %q", scope)
		handlers.RespondBadRequest(w, msgInvalidScope)
	}
}

func (h *Handler) exportAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	rows := make([][]string, 0, len(bookings)+1)
	rows = append(rows, []string{"Student", "Room", "Book", "Hours", "Status", "Date"})
	for _, b := range bookings {
		rows = append(rows, []string{
			b.StudentName,
			b.RoomNumber,
			b.BookTitle,
			b.TimeSlot.String(),
			b.Status,
			b.CreatedAt.Format("2006-01-02"),
		})
	}

	h.writeCSV(w, "bookings_report.csv", rows)
	h.logger.Info("GET /bookings/export - Report exported: scope=all count=%d", len(bookings))
}

func (h *Handler) exportHistory(w http.ResponseWriter, r *http.Request) {
	result, err := h.history.Execute(r.Context(), &getHistory.Request{})
	if err != nil {
		h.logger.Error("GET /bookings/export - Failed to build history: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	archived := models.FromDomainBookingList(result.Bookings)

	rows := make([][]string, 0, len(archived)+1)
	rows = append(rows, []string{"Student", "Book", "Room", "Duration (Hours)", "Status", "Date", "Time"})
	for _, b := range archived {
		rows = append(rows, []string{
			b.StudentName,
			b.BookTitle,
			b.RoomNumber,
			b.TimeSlot.String(),
			b.Status,
			b.CreatedAt.Format("2006-01-02"),
			b.CreatedAt.Format("15:04:05"),
		})
	}

	h.writeCSV(w, "history_report.csv", rows)
	h.logger.Info("GET /bookings/export - Report exported: scope=history count=%d", len(archived))
}

func (h *Handler) writeCSV(w http.ResponseWriter, filename string, rows [][]string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	for _, row := range rows {
		// Запись в ResponseWriter после заголовков уже не может
		// сменить статус, ошибку остаётся только залогировать
		if err := cw.Write(row); err != nil {
			h.logger.Error("GET /bookings/export - Failed to write CSV row: %v", err)
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		h.logger.Error("GET /bookings/export - Failed to flush CSV: %v", err)
	}
}
