package create_booking

import (
	"time"

	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	"github.com/m04kA/CampusBook-Service/pkg/types"
)

// CreateBookingRequest HTTP request model
//
// Поля status и isArchived принимаются для совместимости со старыми
// клиентами, но игнорируются: статус производен от isArchived, а новая
// запись всегда активна
type CreateBookingRequest struct {
	StudentName string      `json:"studentName"`
	BookTitle   string      `json:"bookTitle"`
	RoomNumber  string      `json:"roomNumber"`
	TimeSlot    types.Hours `json:"timeSlot"`
	Status      *string     `json:"status,omitempty"`     // игнорируется
	IsArchived  *bool       `json:"isArchived,omitempty"` // игнорируется
	CreatedAt   *time.Time  `json:"createdAt,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest() *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		StudentName: r.StudentName,
		BookTitle:   r.BookTitle,
		RoomNumber:  r.RoomNumber,
		TimeSlot:    r.TimeSlot,
		CreatedAt:   r.CreatedAt,
	}
}
