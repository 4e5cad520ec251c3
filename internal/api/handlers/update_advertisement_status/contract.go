package update_advertisement_status

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

type AdvertisementService interface {
	UpdateStatus(ctx context.Context, adID int64, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
