package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CampusBook-Service/internal/api/handlers"
	"github.com/m04kA/CampusBook-Service/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrValidation):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			// Текст ошибки валидации называет конкретное поле
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, student=%q",
		result.ID, result.StudentName)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
