package get_statistics

import (
	"math"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

// Чистые преобразования над снимком коллекции
// Пересчитываются целиком на каждом обновлении списка, состояния не держат

// countBookings считает записи по состоянию жизненного цикла
func countBookings(bookings []*domain.Booking) (total, active, archived int) {
	total = len(bookings)
	for _, b := range bookings {
		if b.IsActive() {
			active++
		} else {
			archived++
		}
	}
	return total, active, archived
}

// durationBuckets разбивает все бронирования (активные и архивные) на
// длинные и короткие сессии. Граница входит в "длинные": timeSlot=2 - длинная,
// timeSlot=1.999 - короткая
func durationBuckets(bookings []*domain.Booking) (long, short int) {
	for _, b := range bookings {
		if b.TimeSlot.Float64() >= domain.LongSessionHours {
			long++
		} else {
			short++
		}
	}
	return long, short
}

// averageDuration средняя длительность по всем бронированиям,
// округлённая до одного знака. Для пустого списка - 0.0
func averageDuration(bookings []*domain.Booking) float64 {
	if len(bookings) == 0 {
		return 0.0
	}

	var sum float64
	for _, b := range bookings {
		sum += b.TimeSlot.Float64()
	}

	return math.Round(sum/float64(len(bookings))*10) / 10
}

// totalHours суммарная длительность, округлённая до одного знака
func totalHours(bookings []*domain.Booking) float64 {
	var sum float64
	for _, b := range bookings {
		sum += b.TimeSlot.Float64()
	}
	return math.Round(sum*10) / 10
}

// recentBookings первые n записей снимка
// Снимок приходит от хранилища упорядоченным от новых к старым, так что это
// n последних по времени создания
func recentBookings(bookings []*domain.Booking, n int) []*domain.Booking {
	if len(bookings) < n {
		n = len(bookings)
	}
	recent := make([]*domain.Booking, n)
	copy(recent, bookings[:n])
	return recent
}

// archivedSubset возвращает архивные записи
func archivedSubset(bookings []*domain.Booking) []*domain.Booking {
	archived := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.IsArchived {
			archived = append(archived, b)
		}
	}
	return archived
}

// mostFrequent argmax по частоте значений
// При равенстве частот побеждает первое встреченное значение в порядке обхода
// map - порядок не детерминирован, ничьи разрешаются произвольно
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var best string
	var bestCount int
	for v, c := range counts {
		if c > bestCount {
			best = v
			bestCount = c
		}
	}
	return best
}
