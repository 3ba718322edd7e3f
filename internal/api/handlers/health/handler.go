package health

import "net/http"

// Строка ответа зафиксирована: по ней проверяют живость внешние мониторы
const livenessMessage = "Campus Booking API is Running!"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(livenessMessage))
}
