package get_statistics

import (
	"net/http"

	"github.com/m04kA/CampusBook-Service/internal/api/handlers"
)

type Handler struct {
	useCase GetStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/bookings/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /bookings/statistics - Failed to compute statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/statistics - Statistics computed: total=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
