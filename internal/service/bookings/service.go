package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	bookingRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/booking"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь видит только свои бронирования, администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Историю видит владелец и администратор.
// Scope upcoming возвращает подтвержденные бронирования с сегодняшней даты,
// past - прошедшие, пустой scope - всю историю
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d by caller=%d, scope=%v",
		req.UserID, req.CallerID, req.Scope)

	if req.CallerID != req.UserID {
		if err := s.checkAdminAccess(ctx, req.CallerID); err != nil {
			s.logger.Warn("GetUserBookings: access denied for caller=%d to user=%d bookings",
				req.CallerID, req.UserID)
			return nil, err
		}
	}

	scope, err := models.ToDomainScope(req.Scope)
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid scope=%v for user=%d", req.Scope, req.UserID)
		return nil, fmt.Errorf("%w: invalid scope", ErrInvalidInput)
	}

	today := truncateToDate(s.timeProvider.Now())

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, scope, today)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование, администратор - любое.
// Завершенные и уже отмененные бронирования отмене не подлежат
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if err := s.checkBookingAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", userID, bookingID)
		return err
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCancelled); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только администраторам. Допустимые переходы:
// pending -> confirmed, confirmed -> completed, неконечные статусы -> cancelled
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// BulkConfirm подтверждает набор бронирований со статусом pending
// Бронирования в других статусах не затрагиваются. Возвращает количество
// обновленных записей. Доступно только администраторам
func (s *Service) BulkConfirm(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error) {
	s.logger.Info("BulkConfirm: confirming %d bookings by user=%d", len(req.BookingIDs), req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if len(req.BookingIDs) == 0 {
		return &models.BulkActionResponse{Affected: 0}, nil
	}

	affected, err := s.bookingRepo.BulkUpdateStatus(ctx, req.BookingIDs, domain.StatusPending, domain.StatusConfirmed)
	if err != nil {
		s.logger.Error("BulkConfirm: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkConfirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkConfirm: confirmed %d of %d bookings", affected, len(req.BookingIDs))
	return &models.BulkActionResponse{Affected: affected}, nil
}

// BulkComplete завершает набор бронирований со статусом confirmed
// Возвращает количество обновленных записей. Доступно только администраторам
func (s *Service) BulkComplete(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error) {
	s.logger.Info("BulkComplete: completing %d bookings by user=%d", len(req.BookingIDs), req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if len(req.BookingIDs) == 0 {
		return &models.BulkActionResponse{Affected: 0}, nil
	}

	affected, err := s.bookingRepo.BulkUpdateStatus(ctx, req.BookingIDs, domain.StatusConfirmed, domain.StatusCompleted)
	if err != nil {
		s.logger.Error("BulkComplete: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkComplete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkComplete: completed %d of %d bookings", affected, len(req.BookingIDs))
	return &models.BulkActionResponse{Affected: affected}, nil
}

// BulkCancelBookings отменяет набор бронирований
// Завершенные и уже отмененные бронирования не затрагиваются.
// Возвращает количество обновленных записей. Доступно только администраторам
func (s *Service) BulkCancelBookings(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error) {
	s.logger.Info("BulkCancelBookings: cancelling %d bookings by user=%d", len(req.BookingIDs), req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if len(req.BookingIDs) == 0 {
		return &models.BulkActionResponse{Affected: 0}, nil
	}

	affected, err := s.bookingRepo.BulkCancel(ctx, req.BookingIDs)
	if err != nil {
		s.logger.Error("BulkCancelBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkCancelBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkCancelBookings: cancelled %d of %d bookings", affected, len(req.BookingIDs))
	return &models.BulkActionResponse{Affected: affected}, nil
}

// Вспомогательные методы

// truncateToDate отбрасывает время, оставляя календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// checkBookingAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у владельца бронирования и у администратора
func (s *Service) checkBookingAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	return s.checkAdminAccess(ctx, userID)
}

// checkAdminAccess проверяет, что пользователь является администратором
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsAdmin() {
		s.logger.Warn("checkAdminAccess: user id=%d is not an admin", userID)
		return ErrAccessDenied
	}

	return nil
}
