package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	bookingRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/booking"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	"github.com/goatcricket/GCB-BookingService/pkg/ptr"
)

// Сообщение для гонки двух одновременных бронирований: проверка пересечений
// прошла, но вставка уперлась в constraint на уровне БД
const msgSlotTakenRace = "Selected slot is already booked for this court"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo BookingRepository
	courtRepo   CourtRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courtRepo:   courtRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Доменная валидация и вставка выполняются в SERIALIZABLE транзакции с
// блокировкой подтвержденных бронирований корта на дату (FOR UPDATE) -
// это закрывает гонку двух одновременных запросов, прошедших проверку
// пересечений до записи. Exclusion constraint в БД остается последним
// рубежом: его срабатывание переводится в ту же категорию ошибок конфликта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, court=%d, date=%s, time=%s-%s, players=%d",
		req.UserID, req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.NumberOfPlayers)

	// 1. Валидация формы запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: request validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем корт (вместимость и часовая ставка нужны валидатору и калькулятору цены)
	court, err := uc.courtRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrCourtNotFound) {
			uc.logger.Warn("CreateBooking: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CreateBooking: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("CreateBooking: court id=%d is not active", req.CourtID)
		return nil, ErrCourtInactive
	}

	var result *domain.Booking

	// 3. Доменная валидация и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Подтвержденные бронирования корта на эту дату с блокировкой (FOR UPDATE)
		filter := domain.CourtBookingsFilter{
			CourtID: req.CourtID,
			Date:    &req.Date,
			Status:  ptr.Ptr(domain.StatusConfirmed),
		}

		existing, err := uc.bookingRepo.GetByCourtWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get existing bookings: %v", err)
			return fmt.Errorf("%w: failed to get existing bookings: %v", ErrInternal, err)
		}

		// 3.2. Валидатор накапливает все ошибки и отчитывается разом
		if msgs := validateBooking(req, court, existing); len(msgs) > 0 {
			uc.logger.Warn("CreateBooking: validation failed for user=%d, court=%d: %v",
				req.UserID, req.CourtID, msgs)
			return &ValidationError{Messages: msgs}
		}

		// 3.3. Цена выводится из ставки корта и длительности
		price, err := CalculatePrice(court.PricePerHour, req.StartTime, req.EndTime)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to calculate price: %v", err)
			return fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
		}

		status := domain.StatusConfirmed
		if req.Status != nil {
			status = *req.Status
		}

		booking := &domain.Booking{
			UserID:          req.UserID,
			CourtID:         req.CourtID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			NumberOfPlayers: req.NumberOfPlayers,
			TotalPrice:      price,
			Status:          status,
			Notes:           req.Notes,
		}

		// 3.4. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: storage reported slot taken for court=%d, date=%s",
					req.CourtID, req.Date.Format(domain.DateFormat))
				return &ValidationError{Messages: []string{msgSlotTakenRace}}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%s",
		result.ID, result.TotalPrice.StringFixed(2))

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		CourtID:         result.CourtID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		NumberOfPlayers: result.NumberOfPlayers,
		TotalPrice:      result.TotalPrice,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
