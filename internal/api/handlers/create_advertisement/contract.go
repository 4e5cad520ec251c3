package create_advertisement

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

type AdvertisementService interface {
	Create(ctx context.Context, req *models.CreateAdvertisementRequest) (*models.AdvertisementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
