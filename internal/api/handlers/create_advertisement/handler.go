package create_advertisement

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements"
	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

const (
	msgInvalidRequestBody = "Invalid request body."
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

// Handle POST /api/v1/advertisements
// Публичная заявка бренда, заявка попадает в очередь модерации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAdvertisementRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advertisements - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ad, err := h.service.Create(r.Context(), &req)
	if err != nil {
		var validationErr *advertisements.ValidationError
		if errors.As(err, &validationErr) {
			h.logger.Warn("POST /advertisements - Validation failed: brand=%q, errors=%v",
				req.BrandName, validationErr.Messages)
			handlers.RespondValidationErrors(w, validationErr.Messages)
			return
		}

		h.logger.Error("POST /advertisements - Failed to create advertisement: brand=%q, error=%v",
			req.BrandName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /advertisements - Advertisement created successfully: ad_id=%d, brand=%q",
		ad.ID, ad.BrandName)
	handlers.RespondJSON(w, http.StatusCreated, ad)
}
