package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Venue represents a location containing one or more courts
type Venue struct {
	ID          int64
	Name        string
	Address     string
	City        string
	Phone       string
	Email       string
	Description string
	Rating      float64 // base rating, used when the venue has no reviews yet
	CreatedAt   time.Time
}

// Court represents a bookable physical unit within a venue
type Court struct {
	ID           int64
	VenueID      int64
	Name         string
	Capacity     int
	PricePerHour decimal.Decimal
	Description  string
	IsActive     bool
	CreatedAt    time.Time
}

// VenueFilter фильтр для списка площадок
type VenueFilter struct {
	Search  *string // Поиск по name/city/address (опционально)
	OrderBy string  // name | rating | created_at (пустое значение - сортировка по рейтингу)
}
