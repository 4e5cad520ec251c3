package get_venue_availability

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса занятости площадки на дату
type Request struct {
	VenueID int64     // ID площадки
	Date    time.Time // Дата (без времени)
}

// BookedSlot занятый интервал корта, формат времени "HH:MM"
type BookedSlot struct {
	StartTime string
	EndTime   string
}

// CourtAvailability занятость одного корта на дату
type CourtAvailability struct {
	CourtID      int64
	CourtName    string
	Capacity     int
	PricePerHour decimal.Decimal
	BookedSlots  []BookedSlot
}

// Response занятость всех активных кортов площадки на дату
type Response struct {
	VenueID   int64
	VenueName string
	Date      time.Time
	Courts    []CourtAvailability
}
