package list_venues

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/service/venues"
	"github.com/goatcricket/GCB-BookingService/internal/service/venues/models"
)

const (
	msgInvalidOrderBy = "Invalid order_by, expected name, rating or created_at."
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

// Handle GET /api/v1/venues?search=...&order_by=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListVenuesRequest{}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}

	if orderBy := query.Get("order_by"); orderBy != "" {
		req.OrderBy = &orderBy
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, venues.ErrInvalidInput) {
			h.logger.Warn("GET /venues - Invalid order_by: %v", req.OrderBy)
			handlers.RespondBadRequest(w, msgInvalidOrderBy)
			return
		}

		h.logger.Error("GET /venues - Failed to list venues: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /venues - Venues retrieved successfully: count=%d", len(result.Venues))
	handlers.RespondJSON(w, http.StatusOK, result)
}
