package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	bookingRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
)

type fakeBookingRepo struct {
	existing  []*domain.Booking
	createErr error
	created   *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	stored := *booking
	stored.ID = 42
	stored.CreatedAt = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeBookingRepo) GetByCourtWithFilter(_ context.Context, _ domain.CourtBookingsFilter) ([]*domain.Booking, error) {
	return f.existing, nil
}

type fakeCourtRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCourtRepo) GetCourtByID(_ context.Context, _ int64) (*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.court, nil
}

// fakeTxManager прозрачно выполняет функцию без реальной транзакции
type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings *fakeBookingRepo, courts *fakeCourtRepo) *UseCase {
	return NewUseCase(bookings, courts, fakeTxManager{}, noopLogger{})
}

func TestUseCase_Execute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	courts := &fakeCourtRepo{court: testCourt(8)}
	uc := newTestUseCase(bookings, courts)

	resp, err := uc.Execute(context.Background(), testRequest("10:00", "11:30", 6))
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	// 1500/час за полтора часа
	assert.Equal(t, "2250.00", resp.TotalPrice.StringFixed(2))
	require.NotNil(t, bookings.created)
	assert.True(t, bookings.created.TotalPrice.Equal(decimal.NewFromInt(2250)))
}

func TestUseCase_Execute_PendingStatusRequested(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt(8)})

	req := testRequest("10:00", "11:00", 4)
	pending := domain.StatusPending
	req.Status = &pending

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestUseCase_Execute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{err: venueRepo.ErrCourtNotFound})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "11:00", 4))
	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestUseCase_Execute_CourtInactive(t *testing.T) {
	court := testCourt(8)
	court.IsActive = false
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: court})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "11:00", 4))
	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestUseCase_Execute_ConflictReturnsValidationError(t *testing.T) {
	bookings := &fakeBookingRepo{
		existing: []*domain.Booking{confirmedBooking(7, "10:00", "11:00")},
	}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt(8)})

	_, err := uc.Execute(context.Background(), testRequest("10:30", "11:30", 4))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Messages,
		"Court is already booked for this date at: 10:00 - 11:00. Please choose a different time slot.")
}

func TestUseCase_Execute_SlotTakenRace(t *testing.T) {
	// Проверка пересечений прошла, но вставка уперлась в constraint БД
	bookings := &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt(8)})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "11:00", 4))

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{msgSlotTakenRace}, vErr.Messages)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCourtRepo{court: testCourt(8)})

	req := testRequest("10:00", "11:00", 4)
	req.CourtID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_StorageFailure(t *testing.T) {
	bookings := &fakeBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(bookings, &fakeCourtRepo{court: testCourt(8)})

	_, err := uc.Execute(context.Background(), testRequest("10:00", "11:00", 4))
	assert.ErrorIs(t, err, ErrInternal)
}
