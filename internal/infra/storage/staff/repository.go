package staff

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ndmitko/SLN-SchedulingService/pkg/dbmetrics"
	"github.com/ndmitko/SLN-SchedulingService/pkg/psqlbuilder"
)

// Repository репозиторий персонала салонов.
// Используется для проверки прав доступа к операциям управления.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория персонала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsStaff возвращает true, если пользователь является сотрудником салона
func (r *Repository) IsStaff(ctx context.Context, salonID, userID int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("salon_staff").
		Where(squirrel.Eq{
			"salon_id": salonID,
			"user_id":  userID,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsStaff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: IsStaff - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	isStaff := rows.Next()

	if err := rows.Err(); err != nil {
		return false, fmt.Errorf("%w: IsStaff - rows error: %v", ErrExecQuery, err)
	}

	return isStaff, nil
}
