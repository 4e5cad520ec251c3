package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// Booking represents a court reservation for a time interval
type Booking struct {
	ID              int64
	UserID          int64
	CourtID         int64
	Date            time.Time // calendar date only, no time component
	StartTime       types.TimeString
	EndTime         types.TimeString
	NumberOfPlayers int
	TotalPrice      decimal.Decimal
	Status          BookingStatus
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking counts towards slot conflicts
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsFinal returns true if the booking reached a terminal state
// Final bookings are immutable except by administrative override
func (b *Booking) IsFinal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// TimeRange returns the booking interval formatted as "HH:MM - HH:MM"
func (b *Booking) TimeRange() string {
	return b.StartTime.String() + " - " + b.EndTime.String()
}

// CanTransitionTo reports whether a status transition is allowed:
// pending -> confirmed, confirmed -> completed, any non-completed -> cancelled
func (b *Booking) CanTransitionTo(to BookingStatus) bool {
	switch to {
	case StatusConfirmed:
		return b.Status == StatusPending
	case StatusCompleted:
		return b.Status == StatusConfirmed
	case StatusCancelled:
		return b.Status != StatusCompleted && b.Status != StatusCancelled
	default:
		return false
	}
}

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CourtBookingsFilter фильтр для выборки бронирований корта
type CourtBookingsFilter struct {
	CourtID          int64          // Обязательный параметр
	Date             *time.Time     // Фильтр по дате (опционально)
	Status           *BookingStatus // Фильтр по статусу (опционально)
	ExcludeBookingID *int64         // Исключить бронирование по ID (при редактировании)
}

// UserBookingsScope выборка бронирований пользователя относительно текущей даты
type UserBookingsScope string

const (
	ScopeAll      UserBookingsScope = ""
	ScopeUpcoming UserBookingsScope = "upcoming" // date >= today, только confirmed
	ScopePast     UserBookingsScope = "past"     // date < today
)
