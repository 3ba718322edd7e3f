package get_history

import (
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	getHistory "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getHistory.Response) []models.BookingResponse {
	return models.FromDomainBookingList(resp.Bookings)
}
