package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	bookingRepo "github.com/m04kA/CampusBook-Service/internal/infra/storage/booking"
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
// Не хранит состояния между вызовами: каждая операция работает по текущему
// снимку хранилища
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает новое бронирование
// Активное состояние выставляется сервисом: isArchived=false, статус
// производный от флага архивации (клиентский override не принимается)
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: student=%q, room=%q, timeSlot=%s", req.StudentName, req.RoomNumber, req.TimeSlot)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		StudentName: strings.TrimSpace(req.StudentName),
		BookTitle:   strings.TrimSpace(req.BookTitle),
		RoomNumber:  strings.TrimSpace(req.RoomNumber),
		TimeSlot:    req.TimeSlot,
		Status:      domain.StatusForArchived(false),
		IsArchived:  false,
	}

	if req.CreatedAt != nil && !req.CreatedAt.IsZero() {
		booking.CreatedAt = *req.CreatedAt
	} else {
		booking.CreatedAt = s.timeProvider.Now()
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created booking id=%d", created.ID)
	return models.FromDomainBooking(created), nil
}

// List возвращает полный снимок коллекции бронирований
func (s *Service) List(ctx context.Context) ([]models.BookingResponse, error) {
	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// Archive переводит бронирование в архив: isArchived=true, status=Completed
// Переход односторонний и идемпотентный по состоянию записи
func (s *Service) Archive(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Archive: archiving booking id=%d", id)

	if err := s.bookingRepo.Archive(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Archive: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Archive: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Archive - repository error: %v", ErrInternal, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Archive: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Archive - failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Archive: successfully archived booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// Delete удаляет бронирование безвозвратно
// Терминальный переход для активных и архивных записей, без soft-delete
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%d", id)
	return nil
}

// validateCreateRequest валидирует входные данные на создание
// Все четыре поля обязательны, длительность должна быть строго положительной
func validateCreateRequest(req *models.CreateBookingRequest) error {
	if strings.TrimSpace(req.StudentName) == "" {
		return fmt.Errorf("%w: studentName is required", ErrValidation)
	}
	if len(req.StudentName) > domain.MaxStudentNameLength {
		return fmt.Errorf("%w: studentName is too long", ErrValidation)
	}
	if strings.TrimSpace(req.BookTitle) == "" {
		return fmt.Errorf("%w: bookTitle is required", ErrValidation)
	}
	if len(req.BookTitle) > domain.MaxBookTitleLength {
		return fmt.Errorf("%w: bookTitle is too long", ErrValidation)
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		return fmt.Errorf("%w: roomNumber is required", ErrValidation)
	}
	if len(req.RoomNumber) > domain.MaxRoomNumberLength {
		return fmt.Errorf("%w: roomNumber is too long", ErrValidation)
	}
	if !req.TimeSlot.IsPositive() {
		return fmt.Errorf("%w: timeSlot must be a positive number of hours", ErrValidation)
	}
	return nil
}
