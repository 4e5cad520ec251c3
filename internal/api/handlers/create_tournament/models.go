package create_tournament

import (
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/internal/service/tournaments/models"
)

// CreateTournamentRequest HTTP request model
type CreateTournamentRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	StartDate     string `json:"startDate"` // "2025-11-01"
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime"` // "10:00"
	VenueID       int64  `json:"venueId"`
	MaxTeams      int    `json:"maxTeams"`
	EntryFee      string `json:"entryFee"` // "5000.00"
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	Rules         string `json:"rules"`
	PrizePool     string `json:"prizePool"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *CreateTournamentRequest) ToServiceRequest(userID int64) (*models.CreateTournamentRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateTournamentRequest{
		UserID:        userID,
		Name:          r.Name,
		Description:   r.Description,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     r.StartTime,
		VenueID:       r.VenueID,
		MaxTeams:      r.MaxTeams,
		EntryFee:      r.EntryFee,
		ContactPerson: r.ContactPerson,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		Rules:         r.Rules,
		PrizePool:     r.PrizePool,
	}, nil
}
