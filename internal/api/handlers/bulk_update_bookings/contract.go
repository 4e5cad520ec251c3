package bulk_update_bookings

import (
	"context"

	"github.com/goatcricket/GCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	BulkConfirm(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error)
	BulkComplete(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error)
	BulkCancelBookings(ctx context.Context, req *models.BulkActionRequest) (*models.BulkActionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
