package get_schedule

import (
	"context"

	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon/models"
)

type SalonService interface {
	GetWeeklySchedule(ctx context.Context, salonID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
