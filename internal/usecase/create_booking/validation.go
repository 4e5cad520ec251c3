package create_booking

import (
	"fmt"
	"strings"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// Сообщения доменной валидации, показываются пользователю
const (
	msgEndBeforeStart   = "End time must be after start time."
	msgDurationTooShort = "Booking duration must be at least 30 minutes."
	msgDurationTooLong  = "Booking duration cannot exceed 4 hours."
)

// validateRequest валидирует форму запроса (ошибки полей, до доменной валидации)
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.NumberOfPlayers < domain.MinPlayersPerBooking || req.NumberOfPlayers > domain.MaxPlayersPerBooking {
		return fmt.Errorf("%w: numberOfPlayers must be between %d and %d",
			ErrInvalidInput, domain.MinPlayersPerBooking, domain.MaxPlayersPerBooking)
	}

	if req.Status != nil && *req.Status != domain.StatusConfirmed && *req.Status != domain.StatusPending {
		return fmt.Errorf("%w: status must be confirmed or pending", ErrInvalidInput)
	}

	return nil
}

// validateBooking выполняет доменную валидацию кандидата и накапливает ВСЕ
// ошибки, не прерываясь на первой:
// 1. порядок времени (start < end)
// 2. длительность в пределах [30 минут, 4 часа]
// 3. количество игроков не превышает вместимость корта
// 4. отсутствие пересечений с подтвержденными бронированиями корта
//
// existing - подтвержденные бронирования корта на ту же дату
func validateBooking(req *Request, court *domain.Court, existing []*domain.Booking) []string {
	errs := make([]string, 0)

	if !req.StartTime.IsBefore(req.EndTime) {
		errs = append(errs, msgEndBeforeStart)
	}

	// Длительность проверяется и при нарушенном порядке времени -
	// пользователь видит обе ошибки сразу
	if minutes, err := req.StartTime.MinutesUntil(req.EndTime); err == nil {
		if minutes < domain.MinBookingDurationMinutes {
			errs = append(errs, msgDurationTooShort)
		} else if minutes > domain.MaxBookingDurationMinutes {
			errs = append(errs, msgDurationTooLong)
		}
	}

	if req.NumberOfPlayers > court.Capacity {
		errs = append(errs, fmt.Sprintf("Court capacity is %d players. You cannot book for %d players.",
			court.Capacity, req.NumberOfPlayers))
	}

	if conflicts := findConflicts(req.StartTime, req.EndTime, existing, nil); len(conflicts) > 0 {
		errs = append(errs, conflictMessage(conflicts))
	}

	return errs
}

// findConflicts возвращает ВСЕ интервалы подтвержденных бронирований,
// пересекающиеся с кандидатом, в формате "HH:MM - HH:MM"
//
// Интервалы полуоткрытые [start, end): пересечение есть, если
// NOT (end1 <= start2 OR start1 >= end2). Граничащие интервалы
// (end1 == start2) пересечением НЕ считаются
//
// excludeID исключает бронирование по ID (при редактировании существующего)
func findConflicts(start, end types.TimeString, existing []*domain.Booking, excludeID *int64) []string {
	conflicts := make([]string, 0)

	for _, b := range existing {
		if !b.IsConfirmed() {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}

		if !(end.IsBefore(b.StartTime) || end == b.StartTime || start.IsAfter(b.EndTime) || start == b.EndTime) {
			conflicts = append(conflicts, b.TimeRange())
		}
	}

	return conflicts
}

// conflictMessage форматирует список занятых интервалов в сообщение пользователю
func conflictMessage(conflicts []string) string {
	return fmt.Sprintf("Court is already booked for this date at: %s. Please choose a different time slot.",
		strings.Join(conflicts, ", "))
}
