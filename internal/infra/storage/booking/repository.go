package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CampusBook-Service/internal/domain"
	"github.com/m04kA/CampusBook-Service/pkg/psqlbuilder"
)

// Хранилище бронирований: одна коллекция, простой query/update API
// (find-all, insert, update-by-id, delete-by-id)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"student_name",
	"book_title",
	"room_number",
	"time_slot",
	"status",
	"is_archived",
	"created_at",
}

// Create создает новое бронирование
// ID и created_at (если не задан вызывающим) назначает хранилище
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	columns := []string{
		"student_name",
		"book_title",
		"room_number",
		"time_slot",
		"status",
		"is_archived",
	}
	values := []interface{}{
		b.StudentName,
		b.BookTitle,
		b.RoomNumber,
		b.TimeSlot,
		b.Status,
		b.IsArchived,
	}

	// created_at задаётся клиентом только на пути создания, дальше не меняется
	// Если не передан - его назначит хранилище (DEFAULT NOW())
	if !b.CreatedAt.IsZero() {
		columns = append(columns, "created_at")
		values = append(values, b.CreatedAt)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(columns...).
		Values(values...).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// GetAll возвращает полный снимок коллекции
// Порядок: сначала новые (по created_at)
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC, id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Booking
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.StudentName,
		&b.BookTitle,
		&b.RoomNumber,
		&b.TimeSlot,
		&b.Status,
		&b.IsArchived,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	return &b, nil
}

// Archive помечает бронирование архивным
// Единственный разрешённый переход: is_archived false -> true, статус
// выставляется в Completed тем же запросом. Повторная архивация - no-op
// по состоянию записи
func (r *Repository) Archive(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Update("bookings").
		Set("is_archived", true).
		Set("status", domain.StatusCompleted).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Archive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Archive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Archive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование физически и безвозвратно
// Терминальный переход и для активных, и для архивных записей
func (r *Repository) Delete(ctx context.Context, id int64) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.StudentName,
			&b.BookTitle,
			&b.RoomNumber,
			&b.TimeSlot,
			&b.Status,
			&b.IsArchived,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
