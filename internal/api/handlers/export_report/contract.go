package export_report

import (
	"context"

	"github.com/m04kA/CampusBook-Service/internal/service/bookings/models"
	getHistory "github.com/m04kA/CampusBook-Service/internal/usecase/get_history"
)

type BookingService interface {
	List(ctx context.Context) ([]models.BookingResponse, error)
}

type GetHistoryUseCase interface {
	Execute(ctx context.Context, req *getHistory.Request) (*getHistory.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
