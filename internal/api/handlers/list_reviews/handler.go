package list_reviews

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/service/reviews"
)

const (
	msgInvalidVenueID = "Invalid venue ID."
	msgVenueNotFound  = "Venue not found."
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

// Handle GET /api/v1/venues/{venueId}/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/reviews - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	result, err := h.service.ListByVenue(r.Context(), venueID)
	if err != nil {
		if errors.Is(err, reviews.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id}/reviews - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}

		h.logger.Error("GET /venues/{id}/reviews - Failed to list reviews: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id}/reviews - Reviews retrieved successfully: venue_id=%d, count=%d",
		venueID, len(result.Reviews))
	handlers.RespondJSON(w, http.StatusOK, result)
}
