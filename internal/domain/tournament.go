package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// TournamentStatus represents the lifecycle state of a tournament
type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentOngoing   TournamentStatus = "ongoing"
	TournamentCompleted TournamentStatus = "completed"
	TournamentCancelled TournamentStatus = "cancelled"
)

// Tournament represents a cricket tournament hosted at a venue
type Tournament struct {
	ID            int64
	Name          string
	Description   string
	StartDate     time.Time
	EndDate       time.Time
	StartTime     types.TimeString
	VenueID       int64
	MaxTeams      int
	EntryFee      decimal.Decimal
	Status        TournamentStatus
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	Rules         string
	PrizePool     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUpcoming returns true if the tournament has not started yet relative to now
func (t *Tournament) IsUpcoming(now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return !t.StartDate.Before(today)
}
