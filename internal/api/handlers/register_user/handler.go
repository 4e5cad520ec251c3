package register_user

import (
	"errors"
	"net/http"

	"github.com/goatcricket/GCB-BookingService/internal/api/handlers"
	"github.com/goatcricket/GCB-BookingService/internal/service/users"
	"github.com/goatcricket/GCB-BookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "Invalid request body."
	msgEmailTaken         = "A user with this email already exists."
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/users/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		var validationErr *users.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /users/register - Validation failed: email=%s, errors=%v",
				req.Email, validationErr.Messages)
			handlers.RespondValidationErrors(w, validationErr.Messages)

		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /users/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /users/register - Failed to register user: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users/register - User registered successfully: user_id=%d, email=%s",
		user.ID, user.Email)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
