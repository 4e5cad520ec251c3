package list_courts

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/venues/models"
)

type VenueService interface {
	ListCourts(ctx context.Context, venueID int64, activeOnly bool) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
