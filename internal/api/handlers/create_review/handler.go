package create_review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/reviews"
	"github.com/goatcricket/GCB-BookingService/internal/service/reviews/models"
)

const (
	msgInvalidVenueID     = "Invalid venue ID."
	msgInvalidRequestBody = "Invalid request body."
	msgMissingUserID      = "Missing user ID."
	msgVenueNotFound      = "Venue not found."
	msgInvalidRating      = "Rating must be between 1 and 5."
	msgDuplicateReview    = "You have already reviewed this venue."
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/reviews - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /venues/{id}/reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CreateReviewRequest{
		VenueID: venueID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	review, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/reviews - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /venues/{id}/reviews - Invalid rating: venue_id=%d, rating=%d",
				venueID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrDuplicateReview):
			h.logger.Warn("POST /venues/{id}/reviews - Duplicate review: venue_id=%d, user_id=%d",
				venueID, userID)
			handlers.RespondConflict(w, msgDuplicateReview)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/reviews - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /venues/{id}/reviews - Failed to create review: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/reviews - Review created successfully: review_id=%d, venue_id=%d, user_id=%d",
		review.ID, venueID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
