package list_advertisements

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

const (
	msgMissingUserID = "Missing user ID."
	msgForbidden     = "Access denied."
	msgInvalidStatus = "Invalid status, expected pending, approved, rejected or active."
)

type Handler struct {
	service AdvertisementService
	logger  Logger
}

func NewHandler(service AdvertisementService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/advertisements?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/advertisements - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	serviceReq := &models.ListAdvertisementsRequest{
		UserID: userID,
		Status: statusPtr,
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, advertisements.ErrAccessDenied):
			h.logger.Warn("GET /admin/advertisements - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, advertisements.ErrInvalidStatus):
			h.logger.Warn("GET /admin/advertisements - Invalid status: %s", status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/advertisements - Failed to list advertisements: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/advertisements - Advertisements retrieved successfully: count=%d",
		len(result.Advertisements))
	handlers.RespondJSON(w, http.StatusOK, result)
}
