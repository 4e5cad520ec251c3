package bulk_update_bookings

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/api/middleware"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings"
	"github.com/goatcricket/GCB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgInvalidAction      = "Invalid action, expected confirm, complete or cancel."
	msgMissingUserID      = "Missing user ID."
	msgForbidden          = "Access denied."
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/bulk
// Массовые действия администратора: подтверждение, завершение, отмена.
// Бронирования в неподходящем статусе молча пропускаются, в ответе
// количество реально обновленных записей
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /admin/bookings/bulk - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BulkUpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings/bulk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.BulkActionRequest{
		UserID:     userID,
		BookingIDs: req.BookingIDs,
	}

	var (
		result *models.BulkActionResponse
		err    error
	)

	switch req.Action {
	case "confirm":
		result, err = h.service.BulkConfirm(r.Context(), serviceReq)
	case "complete":
		result, err = h.service.BulkComplete(r.Context(), serviceReq)
	case "cancel":
		result, err = h.service.BulkCancelBookings(r.Context(), serviceReq)
	default:
		h.logger.Warn("POST /admin/bookings/bulk - Invalid action: %s", req.Action)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	if err != nil {
		if errors.Is(err, bookings.ErrAccessDenied) {
			h.logger.Warn("POST /admin/bookings/bulk - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		h.logger.Error("POST /admin/bookings/bulk - Failed: action=%s, user_id=%d, error=%v",
			req.Action, userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/bookings/bulk - Action completed: action=%s, requested=%d, affected=%d",
		req.Action, len(req.BookingIDs), result.Affected)
	handlers.RespondJSON(w, http.StatusOK, BulkUpdateResponse{
		Action:   req.Action,
		Affected: result.Affected,
	})
}
