package tournaments

import (
	"context"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// TournamentRepository интерфейс репозитория турниров
type TournamentRepository interface {
	Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error)
	GetByID(ctx context.Context, id int64) (*domain.Tournament, error)
	ListUpcoming(ctx context.Context, from time.Time) ([]*domain.Tournament, error)
}

// VenueRepository интерфейс репозитория площадок
type VenueRepository interface {
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// UserRepository интерфейс репозитория пользователей (для проверки роли)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
