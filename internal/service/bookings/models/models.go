package models

import (
	"time"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/types"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	StudentName string
	BookTitle   string
	RoomNumber  string
	TimeSlot    types.Hours

	// CreatedAt опционально задаётся клиентом (совместимость со старым
	// фронтендом, который присылал createdAt сам). Если nil - ставится now
	CreatedAt *time.Time
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64       `json:"id"`
	StudentName string      `json:"studentName"`
	BookTitle   string      `json:"bookTitle"`
	RoomNumber  string      `json:"roomNumber"`
	TimeSlot    types.Hours `json:"timeSlot"`
	Status      string      `json:"status"`
	IsArchived  bool        `json:"isArchived"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		StudentName: b.StudentName,
		BookTitle:   b.BookTitle,
		RoomNumber:  b.RoomNumber,
		TimeSlot:    b.TimeSlot,
		Status:      string(b.Status),
		IsArchived:  b.IsArchived,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		if br := FromDomainBooking(b); br != nil {
			resp = append(resp, *br)
		}
	}
	return resp
}
