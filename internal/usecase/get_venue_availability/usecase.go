package get_venue_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	"github.com/goatcricket/GCB-BookingService/pkg/ptr"
)

// UseCase use case для получения занятости кортов площадки на дату
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		logger:      logger,
	}
}

// Execute возвращает занятые интервалы всех активных кортов площадки на дату.
// Учитываются только подтвержденные бронирования - pending и отмененные
// не блокируют слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetVenueAvailability: venue=%d, date=%s", req.VenueID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetVenueAvailability: request validation failed: %v", err)
		return nil, err
	}

	venue, err := uc.venueRepo.GetVenueByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("GetVenueAvailability: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("GetVenueAvailability: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	courts, err := uc.venueRepo.ListCourtsByVenue(ctx, req.VenueID, true)
	if err != nil {
		uc.logger.Error("GetVenueAvailability: failed to list courts for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to list courts: %v", ErrInternal, err)
	}

	resp := &Response{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Date:      req.Date,
		Courts:    make([]CourtAvailability, 0, len(courts)),
	}

	for _, court := range courts {
		filter := domain.CourtBookingsFilter{
			CourtID: court.ID,
			Date:    &req.Date,
			Status:  ptr.Ptr(domain.StatusConfirmed),
		}

		bookings, err := uc.bookingRepo.GetByCourtWithFilter(ctx, filter)
		if err != nil {
			uc.logger.Error("GetVenueAvailability: failed to get bookings for court id=%d: %v", court.ID, err)
			return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		slots := make([]BookedSlot, 0, len(bookings))
		for _, b := range bookings {
			slots = append(slots, BookedSlot{
				StartTime: b.StartTime.String(),
				EndTime:   b.EndTime.String(),
			})
		}

		resp.Courts = append(resp.Courts, CourtAvailability{
			CourtID:      court.ID,
			CourtName:    court.Name,
			Capacity:     court.Capacity,
			PricePerHour: court.PricePerHour,
			BookedSlots:  slots,
		})
	}

	uc.logger.Info("GetVenueAvailability: venue=%d, date=%s, courts=%d",
		req.VenueID, req.Date.Format(domain.DateFormat), len(resp.Courts))

	return resp, nil
}

// validateRequest валидирует форму запроса
func validateRequest(req *Request) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}
