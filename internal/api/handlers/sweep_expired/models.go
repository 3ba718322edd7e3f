package sweep_expired

import (
	sweepExpired "github.com/m04kA/CampusBook-Service/internal/usecase/sweep_expired"
)

// FailedArchiveResponse отказ архивации одной записи
type FailedArchiveResponse struct {
	BookingID int64  `json:"bookingId"`
	Reason    string `json:"reason"`
}

// SweepResponse итог прохода очистки
type SweepResponse struct {
	ExpiredCount int                     `json:"expiredCount"`
	ArchivedIDs  []int64                 `json:"archivedIds"`
	Failed       []FailedArchiveResponse `json:"failed"`
}

// FromUseCaseResult конвертирует результат use case в HTTP response
func FromUseCaseResult(result *sweepExpired.Result) *SweepResponse {
	resp := &SweepResponse{
		ExpiredCount: result.ExpiredCount,
		ArchivedIDs:  result.ArchivedIDs,
		Failed:       make([]FailedArchiveResponse, 0, len(result.Failed)),
	}
	if resp.ArchivedIDs == nil {
		resp.ArchivedIDs = []int64{}
	}
	for _, f := range result.Failed {
		resp.Failed = append(resp.Failed, FailedArchiveResponse{
			BookingID: f.BookingID,
			Reason:    f.Reason,
		})
	}
	return resp
}
