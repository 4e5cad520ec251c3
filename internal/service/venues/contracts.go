package venues

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// VenueRepository интерфейс репозитория площадок и кортов
type VenueRepository interface {
	ListVenues(ctx context.Context, filter domain.VenueFilter) ([]*domain.Venue, error)
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	ListCourtsByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Court, error)
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
	CountCourtsByVenue(ctx context.Context, venueID int64) (int, error)
}

// ReviewRepository интерфейс репозитория отзывов (для вычисления рейтинга)
type ReviewRepository interface {
	AverageRatingByVenue(ctx context.Context, venueID int64) (float64, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
