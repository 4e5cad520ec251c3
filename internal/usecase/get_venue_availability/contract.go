package get_venue_availability

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCourtWithFilter(ctx context.Context, filter domain.CourtBookingsFilter) ([]*domain.Booking, error)
}

// VenueRepository интерфейс репозитория площадок и кортов
type VenueRepository interface {
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	ListCourtsByVenue(ctx context.Context, venueID int64, activeOnly bool) ([]*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
