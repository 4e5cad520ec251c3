package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID          int64                 // ID пользователя из X-User-ID
	CourtID         int64                 // ID корта
	Date            time.Time             // Дата бронирования (без времени)
	StartTime       types.TimeString      // Время начала ("10:00")
	EndTime         types.TimeString      // Время окончания ("11:30")
	NumberOfPlayers int                   // Количество игроков
	Status          *domain.BookingStatus // confirmed по умолчанию, pending по явному запросу
	Notes           *string               // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64
	UserID          int64
	CourtID         int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	NumberOfPlayers int
	TotalPrice      decimal.Decimal
	Status          string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
