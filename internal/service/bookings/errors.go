package bookings

import "errors"

var (
	// ErrValidation возвращается при пустых обязательных полях или
	// неположительной длительности на создании
	ErrValidation = errors.New("invalid booking data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
