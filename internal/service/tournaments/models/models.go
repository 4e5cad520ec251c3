package models

import (
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// Request модели

// CreateTournamentRequest запрос на создание турнира
type CreateTournamentRequest struct {
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	StartTime     string    `json:"startTime"` // "10:00"
	VenueID       int64     `json:"venueId"`
	MaxTeams      int       `json:"maxTeams"`
	EntryFee      string    `json:"entryFee"` // денежное значение, "5000.00"
	ContactPerson string    `json:"contactPerson"`
	ContactEmail  string    `json:"contactEmail"`
	ContactPhone  string    `json:"contactPhone"`
	Rules         string    `json:"rules"`
	PrizePool     string    `json:"prizePool"`
}

// Response модели

// TournamentResponse ответ с данными турнира
type TournamentResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StartDate     string `json:"startDate"` // "2025-11-01"
	EndDate       string `json:"endDate"`
	StartTime     string `json:"startTime"` // "10:00"
	VenueID       int64  `json:"venueId"`
	MaxTeams      int    `json:"maxTeams"`
	EntryFee      string `json:"entryFee"`
	Status        string `json:"status"`
	ContactPerson string `json:"contactPerson"`
	ContactEmail  string `json:"contactEmail"`
	ContactPhone  string `json:"contactPhone"`
	Rules         string `json:"rules"`
	PrizePool     string `json:"prizePool"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TournamentListResponse ответ со списком турниров
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
}

// Методы конвертации

// FromDomainTournament конвертирует domain модель в DTO
func FromDomainTournament(t *domain.Tournament) *TournamentResponse {
	if t == nil {
		return nil
	}

	return &TournamentResponse{
		ID:            t.ID,
		Name:          t.Name,
		Description:   t.Description,
		StartDate:     t.StartDate.Format(domain.DateFormat),
		EndDate:       t.EndDate.Format(domain.DateFormat),
		StartTime:     t.StartTime.String(),
		VenueID:       t.VenueID,
		MaxTeams:      t.MaxTeams,
		EntryFee:      t.EntryFee.StringFixed(2),
		Status:        string(t.Status),
		ContactPerson: t.ContactPerson,
		ContactEmail:  t.ContactEmail,
		ContactPhone:  t.ContactPhone,
		Rules:         t.Rules,
		PrizePool:     t.PrizePool,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// FromDomainTournamentList конвертирует список domain моделей в DTO
func FromDomainTournamentList(tournaments []*domain.Tournament) *TournamentListResponse {
	resp := &TournamentListResponse{
		Tournaments: make([]TournamentResponse, 0, len(tournaments)),
	}

	for _, t := range tournaments {
		if tResp := FromDomainTournament(t); tResp != nil {
			resp.Tournaments = append(resp.Tournaments, *tResp)
		}
	}

	return resp
}
