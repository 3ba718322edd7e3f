package get_history

import (
	"net/http"

	"github.com/m04kA/CampusBook-Service/internal/api/handlers"
	getHistory "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
)

type Handler struct {
	useCase GetHistoryUseCase
	logger  Logger
}

func NewHandler(useCase GetHistoryUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/history?sortBy=date-desc&search=...
// Неизвестный sortBy не ошибка: применяется сортировка по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getHistory.Request{
		SortBy: r.URL.Query().Get("sortBy"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /bookings/history - Failed to build history view: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/history - History retrieved: count=%d", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
