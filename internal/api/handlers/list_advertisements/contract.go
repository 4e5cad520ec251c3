package list_advertisements

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/advertisements/models"
)

type AdvertisementService interface {
	List(ctx context.Context, req *models.ListAdvertisementsRequest) (*models.AdvertisementListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
