package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	bookingRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/booking"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedID     int64
	updatedStatus domain.BookingStatus

	bulkFrom     domain.BookingStatus
	bulkTo       domain.BookingStatus
	bulkIDs      []int64
	bulkAffected int64

	cancelledIDs      []int64
	cancelledAffected int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, scope domain.UserBookingsScope, today time.Time) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID != userID {
			continue
		}
		switch scope {
		case domain.ScopeUpcoming:
			if b.Status != domain.StatusConfirmed || b.Date.Before(today) {
				continue
			}
		case domain.ScopePast:
			if !b.Date.Before(today) {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) BulkUpdateStatus(_ context.Context, ids []int64, from, to domain.BookingStatus) (int64, error) {
	f.bulkIDs = ids
	f.bulkFrom = from
	f.bulkTo = to

	// Затрагиваются только бронирования в исходном статусе, как в SQL UPDATE ... WHERE status = from
	var affected int64
	for _, id := range ids {
		if b, ok := f.bookings[id]; ok && b.Status == from {
			affected++
		}
	}
	f.bulkAffected = affected
	return affected, nil
}

func (f *fakeBookingRepo) BulkCancel(_ context.Context, ids []int64) (int64, error) {
	f.cancelledIDs = ids

	var affected int64
	for _, id := range ids {
		if b, ok := f.bookings[id]; ok && b.CanBeCancelled() {
			affected++
		}
	}
	f.cancelledAffected = affected
	return affected, nil
}

type fakeUserRepo struct {
	users map[int64]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return u, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

const (
	ownerID int64 = 10
	otherID int64 = 11
	adminID int64 = 1
)

func newTestService(bookings *fakeBookingRepo) *Service {
	users := &fakeUserRepo{users: map[int64]*domain.User{
		ownerID: {ID: ownerID, Role: domain.RoleUser},
		otherID: {ID: otherID, Role: domain.RoleUser},
		adminID: {ID: adminID, Role: domain.RoleAdmin},
	}}
	return NewService(bookings, users, noopLogger{})
}

func booking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    ownerID,
		CourtID:   1,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    status,
	}
}

func TestService_GetByID_Access(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusConfirmed),
	}}
	svc := newTestService(repo)

	// Владелец видит своё бронирование
	resp, err := svc.GetByID(context.Background(), 1, ownerID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	// Администратор видит любое
	_, err = svc.GetByID(context.Background(), 1, adminID)
	assert.NoError(t, err)

	// Чужому пользователю отказано
	_, err = svc.GetByID(context.Background(), 1, otherID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Несуществующее бронирование
	_, err = svc.GetByID(context.Background(), 99, ownerID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusConfirmed),
		2: booking(2, domain.StatusCompleted),
	}}
	svc := newTestService(repo)

	require.NoError(t, svc.Cancel(context.Background(), 1, ownerID))
	assert.Equal(t, int64(1), repo.updatedID)
	assert.Equal(t, domain.StatusCancelled, repo.updatedStatus)

	// Завершенное бронирование отмене не подлежит
	assert.ErrorIs(t, svc.Cancel(context.Background(), 2, ownerID), ErrCannotCancel)
}

func TestService_Cancel_AccessDenied(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusConfirmed),
	}}
	svc := newTestService(repo)

	assert.ErrorIs(t, svc.Cancel(context.Background(), 1, otherID), ErrAccessDenied)
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusPending),
	}}
	svc := newTestService(repo)

	// Обычному пользователю смена статуса недоступна, даже владельцу
	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: ownerID, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Администратор подтверждает pending
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: adminID, Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)

	// Недопустимый переход pending -> completed
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: adminID, Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Неизвестный статус
	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: adminID, Status: "no_show"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestService_BulkConfirm_OnlyPendingAffected(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusPending),
		2: booking(2, domain.StatusConfirmed),
		3: booking(3, domain.StatusPending),
		4: booking(4, domain.StatusCancelled),
	}}
	svc := newTestService(repo)

	resp, err := svc.BulkConfirm(context.Background(), &models.BulkActionRequest{
		UserID:     adminID,
		BookingIDs: []int64{1, 2, 3, 4},
	})
	require.NoError(t, err)

	// Подтверждены только pending, остальные нетронуты
	assert.Equal(t, int64(2), resp.Affected)
	assert.Equal(t, domain.StatusPending, repo.bulkFrom)
	assert.Equal(t, domain.StatusConfirmed, repo.bulkTo)
}

func TestService_BulkConfirm_RequiresAdmin(t *testing.T) {
	svc := newTestService(&fakeBookingRepo{bookings: map[int64]*domain.Booking{}})

	_, err := svc.BulkConfirm(context.Background(), &models.BulkActionRequest{
		UserID:     ownerID,
		BookingIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_BulkCancelBookings_SkipsFinalStatuses(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusPending),
		2: booking(2, domain.StatusCompleted),
		3: booking(3, domain.StatusConfirmed),
	}}
	svc := newTestService(repo)

	resp, err := svc.BulkCancelBookings(context.Background(), &models.BulkActionRequest{
		UserID:     adminID,
		BookingIDs: []int64{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Affected)
}

func TestService_GetUserBookings_Scope(t *testing.T) {
	today := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

	past := booking(1, domain.StatusCompleted)
	past.Date = today.AddDate(0, 0, -7)
	upcoming := booking(2, domain.StatusConfirmed)
	upcoming.Date = today.AddDate(0, 0, 3)
	pendingFuture := booking(3, domain.StatusPending)
	pendingFuture.Date = today.AddDate(0, 0, 3)

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: past, 2: upcoming, 3: pendingFuture,
	}}
	svc := newTestService(repo)
	svc.timeProvider = &fixedTimeProvider{now: today.Add(9 * time.Hour)}

	// Вся история
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: ownerID})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)

	// upcoming: только подтвержденные с сегодняшней даты
	scope := "upcoming"
	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: ownerID, Scope: &scope})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)

	// past: прошедшие любого статуса
	scope = "past"
	resp, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: ownerID, Scope: &scope})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	// Неизвестный scope отклоняется
	scope = "tomorrow"
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: ownerID, Scope: &scope})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_GetUserBookings_Access(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: booking(1, domain.StatusConfirmed),
	}}
	svc := newTestService(repo)

	// Администратор видит историю любого пользователя
	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: adminID})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	// Чужому пользователю отказано
	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: ownerID, CallerID: otherID})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}
