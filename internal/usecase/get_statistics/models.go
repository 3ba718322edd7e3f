package get_statistics

import "github.com/m04kA/CampusBook-Service/internal/domain"

// HistoryStats агрегаты по архивному подмножеству
type HistoryStats struct {
	Completed         int
	TotalHours        float64
	AverageHours      float64
	MostActiveStudent string // ничьи разрешаются произвольно
	MostUsedRoom      string // ничьи разрешаются произвольно
}

// Response агрегаты по одному снимку коллекции
type Response struct {
	Total    int
	Active   int
	Archived int

	// Разбиение по длительности: граница 2ч входит в длинные
	LongSessions  int
	ShortSessions int

	// Средняя длительность по всем записям, один знак после запятой
	AverageHours float64

	// Загрузка комнат из статической таблицы вместимости (только активные)
	RoomLoads []domain.RoomLoad

	// Последние записи, от новых к старым
	Recent []*domain.Booking

	History HistoryStats
}
