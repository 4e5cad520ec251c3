package advertisements

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// AdvertisementRepository интерфейс репозитория рекламных заявок
type AdvertisementRepository interface {
	Create(ctx context.Context, ad *domain.Advertisement) (*domain.Advertisement, error)
	GetByID(ctx context.Context, id int64) (*domain.Advertisement, error)
	List(ctx context.Context, status *domain.AdvertisementStatus) ([]*domain.Advertisement, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AdvertisementStatus) error
}

// UserRepository интерфейс репозитория пользователей (для проверки роли)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
