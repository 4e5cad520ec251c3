package list_reviews

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByVenue(ctx context.Context, venueID int64) (*models.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
