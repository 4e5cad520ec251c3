package list_tournaments

import (
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/tournaments
// Возвращает предстоящие турниры (start_date >= сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListUpcoming(r.Context())
	if err != nil {
		h.logger.Error("GET /tournaments - Failed to list tournaments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tournaments - Tournaments retrieved successfully: count=%d", len(result.Tournaments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
