package update_advertisement_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

const (
	msgInvalidAdID        = "Invalid advertisement ID."
	msgInvalidRequestBody = "Invalid request body."
	msgNotFound           = "Advertisement not found."
	msgMissingUserID      = "Missing user ID."
	msgForbidden          = "Access denied."
	msgInvalidStatus      = "Invalid advertisement status."
	msgInvalidTransition  = "This status transition is not allowed."
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

// Handle PATCH /api/v1/admin/advertisements/{advertisementId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	adIDStr := vars["advertisementId"]

	adID, err := strconv.ParseInt(adIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/advertisements/{id}/status - Invalid advertisement ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAdID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/advertisements/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/advertisements/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateStatusRequest{
		UserID: userID,
		Status: req.Status,
	}

	if err := h.service.UpdateStatus(r.Context(), adID, serviceReq); err != nil {
		switch {
		case errors.Is(err, advertisements.ErrAdvertisementNotFound):
			h.logger.Warn("PATCH /admin/advertisements/{id}/status - Not found: ad_id=%d", adID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, advertisements.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/advertisements/{id}/status - Access denied: ad_id=%d, user_id=%d",
				adID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, advertisements.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/advertisements/{id}/status - Invalid status: ad_id=%d, status=%s",
				adID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, advertisements.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/advertisements/{id}/status - Invalid transition: ad_id=%d, status=%s",
				adID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/advertisements/{id}/status - Failed: ad_id=%d, error=%v", adID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/advertisements/{id}/status - Status updated successfully: ad_id=%d, status=%s",
		adID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}
