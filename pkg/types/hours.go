package types

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Hours длительность бронирования в часах
//
// Исторически клиенты присылали поле timeSlot то числом (2), то строкой ("2"),
// и в хранилище встречаются оба варианта. Hours приводит значение к float64
// ровно один раз - на границе (JSON / БД). Всё, что не парсится как число,
// трактуется как 0.
type Hours float64

// ParseHours парсит длительность из строки
// Нечисловое содержимое трактуется как 0
func ParseHours(s string) Hours {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Hours(v)
}

// Float64 возвращает длительность как float64
func (h Hours) Float64() float64 {
	return float64(h)
}

// Duration возвращает длительность как time.Duration
func (h Hours) Duration() time.Duration {
	return time.Duration(float64(h) * float64(time.Hour))
}

// IsPositive возвращает true, если длительность строго положительная
func (h Hours) IsPositive() bool {
	return h > 0
}

// String возвращает каноническое строковое представление ("2", "1.5")
func (h Hours) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

// UnmarshalJSON принимает число, числовую строку или null
// Нечисловое содержимое приводится к 0 без ошибки
func (h *Hours) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*h = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	*h = ParseHours(s)
	return nil
}

// MarshalJSON всегда сериализует число
func (h Hours) MarshalJSON() ([]byte, error) {
	return []byte(h.String()), nil
}

// Scan реализует sql.Scanner
// Колонка в БД текстовая, но на всякий случай принимаем и числовые типы драйвера
func (h *Hours) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*h = 0
	case string:
		*h = ParseHours(v)
	case []byte:
		*h = ParseHours(string(v))
	case float64:
		*h = Hours(v)
	case int64:
		*h = Hours(v)
	default:
		return fmt.Errorf("types.Hours: unsupported scan type %T", src)
	}
	return nil
}

// Value реализует driver.Valuer
func (h Hours) Value() (driver.Value, error) {
	return h.String(), nil
}
