package get_history

import (
	"sort"
	"strings"

	"github.com/m04kA/CampusBook-Service/internal/domain"
)

// Ключи сортировки истории
const (
	SortDateDesc     = "date-desc" // по умолчанию
	SortDateAsc      = "date-asc"
	SortStudentAsc   = "student-asc"
	SortStudentDesc  = "student-desc"
	SortBookAsc      = "book-asc"
	SortBookDesc     = "book-desc"
	SortRoomAsc      = "room-asc"
	SortRoomDesc     = "room-desc"
	SortDurationAsc  = "duration-asc"
	SortDurationDesc = "duration-desc"
)

// sortBookings сортирует срез по ключу, in-place
// Неизвестный ключ трактуется как date-desc
func sortBookings(bookings []*domain.Booking, sortBy string) {
	switch sortBy {
	case SortDateAsc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].CreatedAt.Before(bookings[j].CreatedAt)
		})
	case SortStudentAsc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return lessFold(bookings[i].StudentName, bookings[j].StudentName)
		})
	case SortStudentDesc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return lessFold(bookings[j].StudentName, bookings[i].StudentName)
		})
	case SortBookAsc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return lessFold(bookings[i].BookTitle, bookings[j].BookTitle)
		})
	case SortBookDesc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return lessFold(bookings[j].BookTitle, bookings[i].BookTitle)
		})
	case SortRoomAsc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return naturalLess(bookings[i].RoomNumber, bookings[j].RoomNumber)
		})
	case SortRoomDesc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return naturalLess(bookings[j].RoomNumber, bookings[i].RoomNumber)
		})
	case SortDurationAsc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[i].TimeSlot < bookings[j].TimeSlot
		})
	case SortDurationDesc:
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[j].TimeSlot < bookings[i].TimeSlot
		})
	default: // SortDateDesc и всё неизвестное
		sort.SliceStable(bookings, func(i, j int) bool {
			return bookings[j].CreatedAt.Before(bookings[i].CreatedAt)
		})
	}
}

// lessFold лексикографическое сравнение без учёта регистра
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

// naturalLess сравнение строк с числовой семантикой для цифровых участков:
// "Lab 2" < "Lab 10", а не лексикографически "Lab 10" < "Lab 2"
// Регистр не учитывается
func naturalLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	i, j := 0, 0

	for i < len(la) && j < len(lb) {
		ca, cb := la[i], lb[j]

		if isDigit(ca) && isDigit(cb) {
			si, sj := i, j
			for i < len(la) && isDigit(la[i]) {
				i++
			}
			for j < len(lb) && isDigit(lb[j]) {
				j++
			}

			na := strings.TrimLeft(la[si:i], "0")
			nb := strings.TrimLeft(lb[sj:j], "0")

			// Более длинная последовательность значащих цифр - большее число
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			continue
		}

		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}

	return len(la)-i < len(lb)-j
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// matchesSearch подстрочный поиск без учёта регистра по имени студента,
// книге и комнате
func matchesSearch(b *domain.Booking, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.StudentName), q) ||
		strings.Contains(strings.ToLower(b.BookTitle), q) ||
		strings.Contains(strings.ToLower(b.RoomNumber), q)
}
