package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
	reviewRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/review"
	venueRepo "github.com/goatcricket/GCB-BookingService/internal/infra/storage/venue"
	"github.com/goatcricket/GCB-BookingService/internal/service/reviews/models"
)

// Service сервис для работы с отзывами
type Service struct {
	reviewRepo ReviewRepository
	venueRepo  VenueRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	venueRepo VenueRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo: reviewRepo,
		venueRepo:  venueRepo,
		logger:     logger,
	}
}

// Create создает отзыв площадке
// Пользователь может оставить площадке только один отзыв, рейтинг 1..5
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for venue=%d by user=%d, rating=%d",
		req.VenueID, req.UserID, req.Rating)

	if req.VenueID <= 0 || req.UserID <= 0 {
		s.logger.Warn("Create: invalid ids, venue=%d, user=%d", req.VenueID, req.UserID)
		return nil, fmt.Errorf("%w: venueID and userID must be positive", ErrInvalidInput)
	}

	if req.Rating < domain.MinReviewRating || req.Rating > domain.MaxReviewRating {
		s.logger.Warn("Create: invalid rating=%d for venue=%d", req.Rating, req.VenueID)
		return nil, ErrInvalidRating
	}

	if _, err := s.venueRepo.GetVenueByID(ctx, req.VenueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - failed to get venue: %v", ErrInternal, err)
	}

	review := &domain.Review{
		VenueID: req.VenueID,
		UserID:  req.UserID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: user=%d already reviewed venue=%d", req.UserID, req.VenueID)
			return nil, ErrDuplicateReview
		}
		s.logger.Error("Create: repository error for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d for venue=%d", created.ID, req.VenueID)
	return models.FromDomainReview(created), nil
}

// ListByVenue получает отзывы площадки вместе со средним рейтингом
func (s *Service) ListByVenue(ctx context.Context, venueID int64) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByVenue: fetching reviews for venue=%d", venueID)

	if _, err := s.venueRepo.GetVenueByID(ctx, venueID); err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("ListByVenue: venue id=%d not found", venueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("ListByVenue: failed to get venue id=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - failed to get venue: %v", ErrInternal, err)
	}

	reviews, err := s.reviewRepo.ListByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: repository error for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - repository error: %v", ErrInternal, err)
	}

	resp := &models.ReviewListResponse{
		Reviews: models.FromDomainReviewList(reviews),
	}

	avg, hasReviews, err := s.reviewRepo.AverageRatingByVenue(ctx, venueID)
	if err != nil {
		s.logger.Error("ListByVenue: failed to get average rating for venue=%d: %v", venueID, err)
		return nil, fmt.Errorf("%w: ListByVenue - failed to get average rating: %v", ErrInternal, err)
	}
	if hasReviews {
		resp.AverageRating = &avg
	}

	s.logger.Info("ListByVenue: fetched %d reviews for venue=%d", len(resp.Reviews), venueID)
	return resp, nil
}
