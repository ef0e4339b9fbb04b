package salon

import (
	"context"
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания салона
type ScheduleRepository interface {
	GetWeekly(ctx context.Context, salonID int64) (domain.WeeklySchedule, error)
	ReplaceDay(ctx context.Context, salonID int64, weekday time.Weekday, windows []domain.WorkWindow) error
}

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	ListBySalon(ctx context.Context, salonID int64, activeOnly bool) ([]*domain.Service, error)
}

// StaffRepository интерфейс репозитория персонала салонов
type StaffRepository interface {
	IsStaff(ctx context.Context, salonID, userID int64) (bool, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
