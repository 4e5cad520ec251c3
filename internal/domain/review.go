package domain

import "time"

// Review represents a user's rating of a venue
// A user may leave at most one review per venue
type Review struct {
	ID        int64
	VenueID   int64
	UserID    int64
	Rating    int // 1..5
	Comment   string
	CreatedAt time.Time
}
