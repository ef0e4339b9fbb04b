package update_schedule

import (
	"context"

	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon/models"
)

type SalonService interface {
	UpdateScheduleDay(ctx context.Context, req *models.UpdateScheduleDayRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
