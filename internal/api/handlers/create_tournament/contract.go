package create_tournament

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/tournaments/models"
)

type TournamentService interface {
	Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
