package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	createBooking "github.com/goatcricket/GCB-BookingService/internal/usecase/create_booking"
	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

var (
	// errInvalidDate возвращается, когда дата бронирования не парсится
	errInvalidDate = errors.New("create_booking.handler: invalid booking date")

	// errInvalidTime возвращается, когда время начала или окончания не парсится
	errInvalidTime = errors.New("create_booking.handler: invalid time")
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CourtID         int64   `json:"courtId"`
	BookingDate     string  `json:"bookingDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`   // "10:00"
	EndTime         string  `json:"endTime"`     // "11:30"
	NumberOfPlayers int     `json:"numberOfPlayers"`
	Status          *string `json:"status,omitempty"` // confirmed | pending, по умолчанию confirmed
	Notes           *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	CourtID         int64   `json:"courtId"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	NumberOfPlayers int     `json:"numberOfPlayers"`
	TotalPrice      string  `json:"totalPrice"` // "1500.00"
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	// Парсим дату
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	// Парсим время начала и окончания
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
	}

	var status *domain.BookingStatus
	if r.Status != nil {
		s := domain.BookingStatus(*r.Status)
		status = &s
	}

	return &createBooking.Request{
		UserID:          userID,
		CourtID:         r.CourtID,
		Date:            bookingDate,
		StartTime:       startTime,
		EndTime:         endTime,
		NumberOfPlayers: r.NumberOfPlayers,
		Status:          status,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		CourtID:         resp.CourtID,
		BookingDate:     resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		NumberOfPlayers: resp.NumberOfPlayers,
		TotalPrice:      resp.TotalPrice.StringFixed(2),
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
