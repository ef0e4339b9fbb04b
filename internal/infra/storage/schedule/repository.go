package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/dbmetrics"
	"github.com/ndmitko/SLN-SchedulingService/pkg/psqlbuilder"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// Repository репозиторий рабочих окон недельного расписания салона.
// Окна хранятся построчно: (salon_id, weekday, start_time, end_time).
// Отсутствие строк для дня недели означает, что салон в этот день закрыт.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeekly получает полное недельное расписание салона
func (r *Repository) GetWeekly(ctx context.Context, salonID int64) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "start_time", "end_time").
		From("schedule_windows").
		Where(squirrel.Eq{"salon_id": salonID}).
		OrderBy("weekday ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	weekly := make(domain.WeeklySchedule)

	for rows.Next() {
		var weekday int
		var start, end types.TimeString

		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetWeekly - scan row: %v", ErrScanRow, err)
		}

		day := time.Weekday(weekday)
		weekly[day] = append(weekly[day], domain.WorkWindow{
			StartTime: start,
			EndTime:   end,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWeekly - rows error: %v", ErrScanRow, err)
	}

	return weekly, nil
}

// GetForWeekday получает рабочие окна салона на день недели,
// отсортированные по времени начала. Пустой слайс = салон закрыт.
func (r *Repository) GetForWeekday(ctx context.Context, salonID int64, weekday time.Weekday) ([]domain.WorkWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("start_time", "end_time").
		From("schedule_windows").
		Where(squirrel.Eq{
			"salon_id": salonID,
			"weekday":  int(weekday),
		}).
		OrderBy("start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.WorkWindow, 0)

	for rows.Next() {
		var start, end types.TimeString
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("%w: GetForWeekday - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, domain.WorkWindow{StartTime: start, EndTime: end})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - rows error: %v", ErrScanRow, err)
	}

	return windows, nil
}

// ReplaceDay заменяет все рабочие окна салона на день недели.
// Пустой список окон означает, что салон закрыт в этот день.
// Должен вызываться внутри транзакции, чтобы удаление и вставка были атомарными.
func (r *Repository) ReplaceDay(ctx context.Context, salonID int64, weekday time.Weekday, windows []domain.WorkWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("schedule_windows").
		Where(squirrel.Eq{
			"salon_id": salonID,
			"weekday":  int(weekday),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute delete: %v", ErrExecQuery, err)
	}

	if len(windows) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("schedule_windows").
		Columns("salon_id", "weekday", "start_time", "end_time")

	for _, w := range windows {
		insertBuilder = insertBuilder.Values(salonID, int(weekday), w.StartTime, w.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDay - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
