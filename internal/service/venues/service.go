package venues

import (
	"context"
	"errors"
	"fmt"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	"github.com/goatcricket/GCB-BookingService/internal/service/venues/models"
)

// Service сервис для работы с площадками и кортами
type Service struct {
	venueRepo  VenueRepository
	reviewRepo ReviewRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	venueRepo VenueRepository,
	reviewRepo ReviewRepository,
	logger Logger,
) *Service {
	return &Service{
		venueRepo:  venueRepo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

// List получает список площадок с поиском и сортировкой
// Рейтинг каждой площадки вычисляется по отзывам; при их отсутствии
// используется базовый рейтинг площадки
func (s *Service) List(ctx context.Context, req *models.ListVenuesRequest) (*models.VenueListResponse, error) {
	s.logger.Info("List: fetching venues, search=%v, orderBy=%v", req.Search, req.OrderBy)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	venues, err := s.venueRepo.ListVenues(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.VenueListResponse{
		Venues: make([]models.VenueResponse, 0, len(venues)),
	}

	for _, venue := range venues {
		enriched, err := s.enrichVenue(ctx, venue)
		if err != nil {
			return nil, err
		}
		resp.Venues = append(resp.Venues, *enriched)
	}

	s.logger.Info("List: fetched %d venues", len(resp.Venues))
	return resp, nil
}

// GetByID получает площадку по ID вместе с её кортами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VenueDetailResponse, error) {
	s.logger.Info("GetByID: fetching venue id=%d", id)

	venue, err := s.venueRepo.GetVenueByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetByID: venue id=%d not found", id)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetByID: repository error for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	enriched, err := s.enrichVenue(ctx, venue)
	if err != nil {
		return nil, err
	}

	courts, err := s.venueRepo.ListCourtsByVenue(ctx, id, false)
	if err != nil {
		s.logger.Error("GetByID: failed to list courts for venue id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - failed to list courts: %v", ErrInternal, err)
	}

	return &models.VenueDetailResponse{
		VenueResponse: *enriched,
		Courts:        models.FromDomainCourtList(courts).Courts,
	}, nil
}

// ListCourts получает корты площадки
// activeOnly скрывает корты, временно закрытые для бронирования
func (s *Service) ListCourts(ctx context.Context, venueID int64, activeOnly bool) (*models.CourtListResponse, error) {
	s.logger.Info("ListCourts: fetching courts for venue id=%d, activeOnly=%v", venueID, activeOnly)

	// Площадка должна существовать - иначе пустой список неотличим от опечатки в ID
	if _, err := s.venueRepo.GetVenueByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("ListCourts: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("ListCourts: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	courts, err := s.venueRepo.ListCourtsByVenue(ctx, venueID, activeOnly)
	if err != nil {
		s.logger.Error("ListCourts: repository error for venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListCourts: fetched %d courts for venue id=%d", len(courts), venueID)
	return models.FromDomainCourtList(courts), nil
}

// GetCourtByID получает корт по ID
func (s *Service) GetCourtByID(ctx context.Context, id int64) (*models.CourtResponse, error) {
	s.logger.Info("GetCourtByID: fetching court id=%d", id)

	court, err := s.venueRepo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, venueRepo.ErrCourtNotFound) {
			s.logger.Warn("GetCourtByID: court id=%d not found", id)
			return nil, ErrCourtNotFound
		}
		s.logger.Error("GetCourtByID: repository error for court id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetCourtByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourt(court), nil
}

// Вспомогательные методы

// enrichVenue дополняет площадку рейтингом по отзывам и количеством кортов
func (s *Service) enrichVenue(ctx context.Context, venue *domain.Venue) (*models.VenueResponse, error) {
	rating := venue.Rating

	avg, hasReviews, err := s.reviewRepo.AverageRatingByVenue(ctx, venue.ID)
	if err != nil {
		s.logger.Error("enrichVenue: failed to get average rating for venue id=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: enrichVenue - failed to get average rating: %v", ErrInternal, err)
	}
	if hasReviews {
		rating = avg
	}

	courtsCount, err := s.venueRepo.CountCourtsByVenue(ctx, venue.ID)
	if err != nil {
		s.logger.Error("enrichVenue: failed to count courts for venue id=%d: %v", venue.ID, err)
		return nil, fmt.Errorf("%w: enrichVenue - failed to count courts: %v", ErrInternal, err)
	}

	return models.FromDomainVenue(venue, rating, courtsCount), nil
}
