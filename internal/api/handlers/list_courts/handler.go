package list_courts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/service/venues"
)

const (
	msgInvalidVenueID = "Invalid venue ID."
	msgVenueNotFound  = "Venue not found."
)

type Handler struct {
	service VenueService
	logger  Logger
}

func NewHandler(service VenueService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/courts?include_inactive=true
// По умолчанию возвращаются только активные корты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	venueIDStr := vars["venueId"]

	venueID, err := strconv.ParseInt(venueIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /venues/{id}/courts - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	activeOnly := r.URL.Query().Get("include_inactive") != "true"

	result, err := h.service.ListCourts(r.Context(), venueID, activeOnly)
	if err != nil {
		if errors.Is(err, venues.ErrVenueNotFound) {
			h.logger.Warn("GET /venues/{id}/courts - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)
			return
		}

		h.logger.Error("GET /venues/{id}/courts - Failed to list courts: venue_id=%d, error=%v", venueID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues/{id}/courts - Courts retrieved successfully: venue_id=%d, count=%d",
		venueID, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
