package get_venue_availability

import (
	"github.com/goatcricket/GCB-BookingService/internal/domain"
	getVenueAvailability "github.com/goatcricket/GCB-BookingService/internal/usecase/get_venue_availability"
)

// BookedSlotResponse занятый интервал корта
type BookedSlotResponse struct {
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:30"
}

// CourtAvailabilityResponse занятость одного корта
type CourtAvailabilityResponse struct {
	CourtID      int64                `json:"courtId"`
	CourtName    string               `json:"courtName"`
	Capacity     int                  `json:"capacity"`
	PricePerHour string               `json:"pricePerHour"` // "1500.00"
	BookedSlots  []BookedSlotResponse `json:"bookedSlots"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	VenueID   int64                       `json:"venueId"`
	VenueName string                      `json:"venueName"`
	Date      string                      `json:"date"` // "2025-10-15"
	Courts    []CourtAvailabilityResponse `json:"courts"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getVenueAvailability.Response) *AvailabilityResponse {
	courts := make([]CourtAvailabilityResponse, 0, len(resp.Courts))

	for _, court := range resp.Courts {
		slots := make([]BookedSlotResponse, 0, len(court.BookedSlots))
		for _, slot := range court.BookedSlots {
			slots = append(slots, BookedSlotResponse{
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
			})
		}

		courts = append(courts, CourtAvailabilityResponse{
			CourtID:      court.CourtID,
			CourtName:    court.CourtName,
			Capacity:     court.Capacity,
			PricePerHour: court.PricePerHour.StringFixed(2),
			BookedSlots:  slots,
		})
	}

	return &AvailabilityResponse{
		VenueID:   resp.VenueID,
		VenueName: resp.VenueName,
		Date:      resp.Date.Format(domain.DateFormat),
		Courts:    courts,
	}
}
