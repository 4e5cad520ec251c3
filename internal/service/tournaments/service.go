package tournaments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	tournamentRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/tournament"
	userRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/user"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	"github.com/goatcricket/GCB-BookingService/internal/service/tournaments/models"
	"github.com/goatcricket/GCB-BookingService/pkg/types"
)

// Сообщения валидации турнира, показываются пользователю
const (
	msgNameRequired     = "Tournament name is required."
	msgStartDateInPast  = "Tournament start date cannot be in the past."
	msgEndBeforeStart   = "End date cannot be before start date."
	msgStartTimeInvalid = "Enter a valid start time."
	msgMaxTeamsInvalid  = "Maximum teams must be a positive number."
	msgEntryFeeInvalid  = "Enter a valid entry fee."
)

// Service сервис для работы с турнирами
type Service struct {
	tournamentRepo TournamentRepository
	venueRepo      VenueRepository
	userRepo       UserRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса турниров
func NewService(
	tournamentRepo TournamentRepository,
	venueRepo VenueRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		tournamentRepo: tournamentRepo,
		venueRepo:      venueRepo,
		userRepo:       userRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// ListUpcoming получает предстоящие турниры (start_date >= сегодня)
func (s *Service) ListUpcoming(ctx context.Context) (*models.TournamentListResponse, error) {
	s.logger.Info("ListUpcoming: fetching upcoming tournaments")

	today := truncateToDate(s.timeProvider.Now())

	tournaments, err := s.tournamentRepo.ListUpcoming(ctx, today)
	if err != nil {
		s.logger.Error("ListUpcoming: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUpcoming - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUpcoming: fetched %d tournaments", len(tournaments))
	return models.FromDomainTournamentList(tournaments), nil
}

// GetByID получает турнир по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TournamentResponse, error) {
	s.logger.Info("GetByID: fetching tournament id=%d", id)

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("GetByID: tournament id=%d not found", id)
			return nil, ErrTournamentNotFound
		}
		s.logger.Error("GetByID: repository error for tournament id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTournament(tournament), nil
}

// Create создает турнир
// Турнир не может начинаться в прошлом, дата окончания не раньше даты начала.
// Доступно только администраторам. Валидатор накапливает все ошибки
func (s *Service) Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	s.logger.Info("Create: creating tournament %q at venue=%d by user=%d", req.Name, req.VenueID, req.UserID)

	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	if _, err := s.venueRepo.GetVenueByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - failed to get venue: %v", ErrInternal, err)
	}

	today := truncateToDate(s.timeProvider.Now())

	startTime, entryFee, msgs := validateTournament(req, today)
	if len(msgs) > 0 {
		s.logger.Warn("Create: validation failed for tournament %q: %v", req.Name, msgs)
		return nil, &ValidationError{Messages: msgs}
	}

	tournament := &domain.Tournament{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     startTime,
		VenueID:       req.VenueID,
		MaxTeams:      req.MaxTeams,
		EntryFee:      entryFee,
		Status:        domain.TournamentUpcoming,
		ContactPerson: req.ContactPerson,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
		Rules:         req.Rules,
		PrizePool:     req.PrizePool,
	}

	created, err := s.tournamentRepo.Create(ctx, tournament)
	if err != nil {
		s.logger.Error("Create: repository error for tournament %q: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created tournament id=%d, name=%q", created.ID, created.Name)
	return models.FromDomainTournament(created), nil
}

// Вспомогательные методы

// validateTournament валидирует запрос и накапливает ВСЕ ошибки, не прерываясь
// на первой. Возвращает распарсенные время начала и взнос за участие
func validateTournament(req *models.CreateTournamentRequest, today time.Time) (types.TimeString, decimal.Decimal, []string) {
	errs := make([]string, 0)

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, msgNameRequired)
	}

	if req.StartDate.Before(today) {
		errs = append(errs, msgStartDateInPast)
	}

	if req.EndDate.Before(req.StartDate) {
		errs = append(errs, msgEndBeforeStart)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		errs = append(errs, msgStartTimeInvalid)
	}

	if req.MaxTeams <= 0 {
		errs = append(errs, msgMaxTeamsInvalid)
	}

	entryFee := decimal.Zero
	if req.EntryFee != "" {
		entryFee, err = decimal.NewFromString(req.EntryFee)
		if err != nil || entryFee.IsNegative() {
			entryFee = decimal.Zero
			errs = append(errs, msgEntryFeeInvalid)
		}
	}

	return startTime, entryFee, errs
}

// truncateToDate отбрасывает время, оставляя календарную дату
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
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
