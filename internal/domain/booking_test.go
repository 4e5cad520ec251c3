package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"completed to cancelled", StatusCompleted, StatusCancelled, false},
		{"cancelled to cancelled", StatusCancelled, StatusCancelled, false},
		{"completed to confirmed", StatusCompleted, StatusConfirmed, false},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, false},
		{"unknown target", StatusConfirmed, BookingStatus("no_show"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_TimeRange(t *testing.T) {
	b := &Booking{StartTime: "10:00", EndTime: "11:30"}
	assert.Equal(t, "10:00 - 11:30", b.TimeRange())
}

func TestValidBookingStatus(t *testing.T) {
	assert.True(t, ValidBookingStatus(StatusPending))
	assert.True(t, ValidBookingStatus(StatusCompleted))
	assert.False(t, ValidBookingStatus(BookingStatus("unknown")))
}
