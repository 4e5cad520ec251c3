package reviews

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	ListByVenue(ctx context.Context, venueID int64) ([]*domain.Review, error)
	AverageRatingByVenue(ctx context.Context, venueID int64) (float64, bool, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
