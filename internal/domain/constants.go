package domain

// Booking validation constants
const (
	MinBookingDurationMinutes = 30
	MaxBookingDurationMinutes = 240 // 4 hours

	MinPlayersPerBooking = 1
	MaxPlayersPerBooking = 12

	DefaultCourtCapacity = 8
)

// Review constants
const (
	MinReviewRating = 1
	MaxReviewRating = 5
)

// Advertisement constants
const (
	MobileNumberLength = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
