package field

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения полей.
// Поля создаются и редактируются внешним manager-сервисом;
// ядро бронирования их только читает.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория полей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает поле по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Field, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_price_per_hour",
		"timezone",
		"open_minutes",
		"close_minutes",
		"created_at",
		"updated_at",
	).
		From("fields").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var field domain.Field
	var openMinutes, closeMinutes sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&field.ID,
		&field.Name,
		&field.BasePricePerHour,
		&field.Timezone,
		&openMinutes,
		&closeMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrFieldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan field: %v", ErrScanRow, err)
	}

	if openMinutes.Valid {
		v := int(openMinutes.Int64)
		field.OpenMinutes = &v
	}
	if closeMinutes.Valid {
		v := int(closeMinutes.Int64)
		field.CloseMinutes = &v
	}
	field.CreatedAt = createdAt.Time
	field.UpdatedAt = updatedAt.Time

	return &field, nil
}
