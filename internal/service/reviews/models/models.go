package models

import (
	"time"

	"github.com/goatcricket/GCB-BookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	VenueID int64  `json:"venueId"`
	UserID  int64  `json:"userId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID      int64  `json:"id"`
	VenueID int64  `json:"venueId"`
	UserID  int64  `json:"userId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`

	CreatedAt time.Time `json:"createdAt"`
}

// ReviewListResponse отзывы площадки со средним рейтингом
// AverageRating равен nil, пока отзывов нет
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating *float64         `json:"averageRating,omitempty"`
}

// Методы конвертации

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}

	return &ReviewResponse{
		ID:        r.ID,
		VenueID:   r.VenueID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))

	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			result = append(result, *reviewResp)
		}
	}

	return result
}
