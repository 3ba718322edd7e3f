package domain

import "sort"

// LoadTier уровень загрузки комнаты для подсветки на дашборде
type LoadTier string

const (
	TierOK       LoadTier = "ok"
	TierBusy     LoadTier = "busy"     // загрузка > 50%
	TierCritical LoadTier = "critical" // загрузка > 85%
)

// RoomLoad загрузка одной комнаты по активным бронированиям
type RoomLoad struct {
	Room       string
	Count      int
	Max        int
	Percentage float64 // min(count/max*100, 100); при count=0 ровно 0
	Tier       LoadTier
}

// TierForPercent классифицирует процент загрузки по порогам
func TierForPercent(p float64) LoadTier {
	switch {
	case p > CriticalLoadPercent:
		return TierCritical
	case p > BusyLoadPercent:
		return TierBusy
	default:
		return TierOK
	}
}

// ComputeRoomLoads считает загрузку каждой комнаты из статической таблицы
// вместимости по активным бронированиям. Бронирования в комнатах, которых
// нет в таблице, в расчёт не попадают. Результат отсортирован по имени
// комнаты для детерминированного вывода.
func ComputeRoomLoads(capacities map[string]int, active []*Booking) []RoomLoad {
	counts := make(map[string]int, len(capacities))
	for _, b := range active {
		if !b.IsActive() {
			continue
		}
		if _, known := capacities[b.RoomNumber]; known {
			counts[b.RoomNumber]++
		}
	}

	rooms := make([]string, 0, len(capacities))
	for room := range capacities {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)

	loads := make([]RoomLoad, 0, len(rooms))
	for _, room := range rooms {
		max := capacities[room]
		count := counts[room]

		var percentage float64
		if max > 0 {
			percentage = float64(count) / float64(max) * 100
			if percentage > 100 {
				percentage = 100
			}
		}

		loads = append(loads, RoomLoad{
			Room:       room,
			Count:      count,
			Max:        max,
			Percentage: percentage,
			Tier:       TierForPercent(percentage),
		})
	}

	return loads
}
