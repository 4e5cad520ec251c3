package list_tournaments

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/tournaments/models"
)

type TournamentService interface {
	ListUpcoming(ctx context.Context) (*models.TournamentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
