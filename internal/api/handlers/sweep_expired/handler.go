package sweep_expired

import (
	"net/http"

	"github.com/m04kA/CampusBook-Service/internal/api/handlers"
)

type Handler struct {
	useCase SweepExpiredUseCase
	logger  Logger
}

func NewHandler(useCase SweepExpiredUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/bookings/sweep
// Запускает один проход архивации истёкших сессий. Частичные отказы не
// считаются ошибкой запроса: они возвращаются в теле ответа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("POST /bookings/sweep - Sweep pass failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /bookings/sweep - Sweep done: expired=%d archived=%d failed=%d",
		result.ExpiredCount, len(result.ArchivedIDs), len(result.Failed))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResult(result))
}
