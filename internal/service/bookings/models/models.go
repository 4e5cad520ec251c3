package models

import (
	"errors"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidScope возвращается при некорректной выборке бронирований
	ErrInvalidScope = errors.New("invalid bookings scope")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID   int64   `json:"userId"`
	CallerID int64   `json:"callerId"`        // кто запрашивает: владелец или администратор
	Scope    *string `json:"scope,omitempty"` // upcoming | past, пустое значение - вся история
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// BulkActionRequest запрос на массовое действие над бронированиями
type BulkActionRequest struct {
	UserID     int64   `json:"userId"`
	BookingIDs []int64 `json:"bookingIds"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	CourtID         int64   `json:"courtId"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "11:30"
	NumberOfPlayers int     `json:"numberOfPlayers"`
	TotalPrice      string  `json:"totalPrice"` // денежное значение с двумя знаками, "1500.00"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BulkActionResponse ответ с количеством затронутых бронирований
type BulkActionResponse struct {
	Affected int64 `json:"affected"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		CourtID:         b.CourtID,
		BookingDate:     b.Date.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		NumberOfPlayers: b.NumberOfPlayers,
		TotalPrice:      b.TotalPrice.StringFixed(2),
		Status:          string(b.Status),
		Notes:           b.Notes,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainScope конвертирует строку в domain.UserBookingsScope с валидацией
func ToDomainScope(scope *string) (domain.UserBookingsScope, error) {
	if scope == nil {
		return domain.ScopeAll, nil
	}

	switch domain.UserBookingsScope(*scope) {
	case domain.ScopeAll, domain.ScopeUpcoming, domain.ScopePast:
		return domain.UserBookingsScope(*scope), nil
	default:
		return "", ErrInvalidScope
	}
}
