package promotion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/psqlbuilder"
)

var promotionColumns = []string{
	"id",
	"field_id",
	"discount_type",
	"discount_value",
	"start_date",
	"end_date",
	"is_active",
	"created_at",
}

// Repository репозиторий для чтения промоакций.
// Жизненный цикл промоакций принадлежит manager-сервису;
// ядро бронирования их только читает.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория промоакций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveOverlapping получает активные промоакции поля, окно действия которых
// пересекает интервал бронирования (полуоткрытая семантика).
// Сортировка по created_at DESC: при равной итоговой цене PricingResolver
// выбирает самую свежую промоакцию.
func (r *Repository) GetActiveOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.Lt{"start_date": interval.End}).
		Where(squirrel.Gt{"end_date": interval.Start}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPromotions(rows)
}

// GetActiveByField получает все активные промоакции поля без фильтра по
// интервалу. Используется кэшем промоакций: закэшированный набор затем
// фильтруется PricingResolver'ом по окну действия.
func (r *Repository) GetActiveByField(ctx context.Context, fieldID int64) ([]*domain.Promotion, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(promotionColumns...).
		From("promotions").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByField - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByField - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanPromotions(rows)
}

// scanPromotions сканирует результаты запроса в слайс промоакций
func scanPromotions(rows *sql.Rows) ([]*domain.Promotion, error) {
	promotions := make([]*domain.Promotion, 0)

	for rows.Next() {
		var promo domain.Promotion
		var createdAt sql.NullTime

		err := rows.Scan(
			&promo.ID,
			&promo.FieldID,
			&promo.DiscountType,
			&promo.DiscountValue,
			&promo.StartDate,
			&promo.EndDate,
			&promo.IsActive,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanPromotions - scan row: %v", ErrScanRow, err)
		}

		promo.CreatedAt = createdAt.Time
		promotions = append(promotions, &promo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanPromotions - rows error: %v", ErrScanRow, err)
	}

	return promotions, nil
}
