package create_booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

func testCourt(capacity int) *domain.Court {
	return &domain.Court{
		ID:           1,
		VenueID:      1,
		Name:         "Pitch 1",
		Capacity:     capacity,
		PricePerHour: decimal.NewFromInt(1500),
		IsActive:     true,
	}
}

func testRequest(start, end string, players int) *Request {
	return &Request{
		UserID:          10,
		CourtID:         1,
		Date:            time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		NumberOfPlayers: players,
	}
}

func confirmedBooking(id int64, start, end string) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		CourtID:   1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		Status:    domain.StatusConfirmed,
	}
}

func TestValidateBooking_Valid(t *testing.T) {
	msgs := validateBooking(testRequest("10:00", "11:30", 6), testCourt(8), nil)
	assert.Empty(t, msgs)
}

func TestValidateBooking_EndBeforeStart(t *testing.T) {
	msgs := validateBooking(testRequest("12:00", "11:00", 6), testCourt(8), nil)
	assert.Contains(t, msgs, msgEndBeforeStart)
}

func TestValidateBooking_Duration(t *testing.T) {
	// Слишком коротко
	msgs := validateBooking(testRequest("10:00", "10:15", 4), testCourt(8), nil)
	assert.Contains(t, msgs, msgDurationTooShort)

	// Ровно 30 минут - нижняя граница включительно
	msgs = validateBooking(testRequest("10:00", "10:30", 4), testCourt(8), nil)
	assert.Empty(t, msgs)

	// Ровно 4 часа - верхняя граница включительно
	msgs = validateBooking(testRequest("10:00", "14:00", 4), testCourt(8), nil)
	assert.Empty(t, msgs)

	// Слишком долго
	msgs = validateBooking(testRequest("10:00", "14:30", 4), testCourt(8), nil)
	assert.Contains(t, msgs, msgDurationTooLong)
}

func TestValidateBooking_Capacity(t *testing.T) {
	msgs := validateBooking(testRequest("10:00", "11:00", 10), testCourt(8), nil)
	assert.Contains(t, msgs, "Court capacity is 8 players. You cannot book for 10 players.")
}

func TestValidateBooking_Conflict(t *testing.T) {
	existing := []*domain.Booking{confirmedBooking(1, "10:00", "11:00")}

	msgs := validateBooking(testRequest("10:30", "11:30", 4), testCourt(8), existing)
	assert.Contains(t, msgs,
		"Court is already booked for this date at: 10:00 - 11:00. Please choose a different time slot.")
}

func TestValidateBooking_TouchingBoundariesAllowed(t *testing.T) {
	existing := []*domain.Booking{confirmedBooking(1, "10:00", "11:00")}

	// Интервалы полуоткрытые: старт нового в точке окончания существующего - не конфликт
	msgs := validateBooking(testRequest("11:00", "12:00", 4), testCourt(8), existing)
	assert.Empty(t, msgs)

	// И наоборот
	msgs = validateBooking(testRequest("09:00", "10:00", 4), testCourt(8), existing)
	assert.Empty(t, msgs)
}

func TestValidateBooking_AccumulatesAllErrors(t *testing.T) {
	// Порядок нарушен и игроков больше вместимости - обе ошибки разом
	msgs := validateBooking(testRequest("12:00", "11:00", 10), testCourt(8), nil)
	assert.Contains(t, msgs, msgEndBeforeStart)
	assert.Contains(t, msgs, "Court capacity is 8 players. You cannot book for 10 players.")
	assert.GreaterOrEqual(t, len(msgs), 2)
}

func TestFindConflicts_SkipsNonConfirmedAndExcluded(t *testing.T) {
	pending := &domain.Booking{ID: 2, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusPending}
	cancelled := &domain.Booking{ID: 3, StartTime: "10:00", EndTime: "11:00", Status: domain.StatusCancelled}
	confirmed := confirmedBooking(4, "10:00", "11:00")

	// pending и cancelled слот не блокируют
	conflicts := findConflicts("10:30", "11:30", []*domain.Booking{pending, cancelled}, nil)
	assert.Empty(t, conflicts)

	// Исключенное по ID бронирование пропускается (сценарий редактирования)
	excludeID := int64(4)
	conflicts = findConflicts("10:30", "11:30", []*domain.Booking{confirmed}, &excludeID)
	assert.Empty(t, conflicts)

	conflicts = findConflicts("10:30", "11:30", []*domain.Booking{confirmed}, nil)
	assert.Equal(t, []string{"10:00 - 11:00"}, conflicts)
}

func TestFindConflicts_ReportsAllOverlaps(t *testing.T) {
	existing := []*domain.Booking{
		confirmedBooking(1, "09:00", "10:00"),
		confirmedBooking(2, "10:00", "11:00"),
		confirmedBooking(3, "11:30", "12:30"),
	}

	conflicts := findConflicts("09:30", "12:00", existing, nil)
	assert.Equal(t, []string{"09:00 - 10:00", "10:00 - 11:00", "11:30 - 12:30"}, conflicts)
}

func TestValidateRequest(t *testing.T) {
	valid := testRequest("10:00", "11:00", 4)
	assert.NoError(t, validateRequest(valid))

	missing := testRequest("10:00", "11:00", 4)
	missing.CourtID = 0
	assert.ErrorIs(t, validateRequest(missing), ErrInvalidInput)

	badTime := testRequest("25:00", "11:00", 4)
	assert.ErrorIs(t, validateRequest(badTime), ErrInvalidInput)

	tooMany := testRequest("10:00", "11:00", domain.MaxPlayersPerBooking+1)
	assert.ErrorIs(t, validateRequest(tooMany), ErrInvalidInput)

	badStatus := testRequest("10:00", "11:00", 4)
	cancelled := domain.StatusCancelled
	badStatus.Status = &cancelled
	assert.ErrorIs(t, validateRequest(badStatus), ErrInvalidInput)
}
