package create_tournament

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/tournaments"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidDate        = "Invalid date format, expected YYYY-MM-DD."
	msgMissingUserID      = "Missing user ID."
	msgForbidden          = "Access denied."
	msgVenueNotFound      = "Venue not found."
)

type Handler struct {
	service TournamentService
	logger  Logger
}

func NewHandler(service TournamentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/tournaments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/tournaments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateTournamentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/tournaments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /admin/tournaments - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	tournament, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		var validationErr *tournaments.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /admin/tournaments - Validation failed: name=%q, errors=%v",
				req.Name, validationErr.Messages)
			handlers.RespondValidationErrors(w, validationErr.Messages)

		case errors.Is(err, tournaments.ErrAccessDenied):
			h.logger.Warn("POST /admin/tournaments - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, tournaments.ErrVenueNotFound):
			h.logger.Warn("POST /admin/tournaments - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		default:
			h.logger.Error("POST /admin/tournaments - Failed to create tournament: name=%q, error=%v",
				req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/tournaments - Tournament created successfully: tournament_id=%d, name=%q",
		tournament.ID, tournament.Name)
	handlers.RespondJSON(w, http.StatusCreated, tournament)
}
