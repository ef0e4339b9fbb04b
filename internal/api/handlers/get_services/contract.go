package get_services

import (
	"context"

	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon/models"
)

type SalonService interface {
	ListServices(ctx context.Context, salonID int64, activeOnly bool) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
