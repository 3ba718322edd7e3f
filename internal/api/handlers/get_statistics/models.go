package get_statistics

import (
	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	getStatistics "github.com/m04kA/CampusBook-Service/internal/usecase/get_statistics"
)

// RoomLoadResponse загрузка одной комнаты
type RoomLoadResponse struct {
	Room       string  `json:"room"`
	Count      int     `json:"count"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
	Tier       string  `json:"tier"`
}

// HistoryStatsResponse агрегаты по архивному подмножеству
type HistoryStatsResponse struct {
	Completed         int     `json:"completed"`
	TotalHours        float64 `json:"totalHours"`
	AverageHours      float64 `json:"averageHours"`
	MostActiveStudent string  `json:"mostActiveStudent"`
	MostUsedRoom      string  `json:"mostUsedRoom"`
}

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Archived int `json:"archived"`

	LongSessions  int `json:"longSessions"`
	ShortSessions int `json:"shortSessions"`

	AverageHours float64 `json:"averageHours"`

	RoomLoads []RoomLoadResponse       `json:"roomLoads"`
	Recent    []models.BookingResponse `json:"recent"`

	History HistoryStatsResponse `json:"history"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStatistics.Response) *StatisticsResponse {
	roomLoads := make([]RoomLoadResponse, 0, len(resp.RoomLoads))
	for _, l := range resp.RoomLoads {
		roomLoads = append(roomLoads, RoomLoadResponse{
			Room:       l.Room,
			Count:      l.Count,
			Max:        l.Max,
			Percentage: l.Percentage,
			Tier:       string(l.Tier),
		})
	}

	return &StatisticsResponse{
		Total:         resp.Total,
		Active:        resp.Active,
		Archived:      resp.Archived,
		LongSessions:  resp.LongSessions,
		ShortSessions: resp.ShortSessions,
		AverageHours:  resp.AverageHours,
		RoomLoads:     roomLoads,
		Recent:        models.FromDomainBookingList(resp.Recent),
		History: HistoryStatsResponse{
			Completed:         resp.History.Completed,
			TotalHours:        resp.History.TotalHours,
			AverageHours:      resp.History.AverageHours,
			MostActiveStudent: resp.History.MostActiveStudent,
			MostUsedRoom:      resp.History.MostUsedRoom,
		},
	}
}
