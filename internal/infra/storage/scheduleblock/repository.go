package scheduleblock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/psqlbuilder"
)

const pgExclusionViolation = "23P01"

var blockColumns = []string{
	"id",
	"field_id",
	"start_time",
	"end_time",
	"reason",
	"created_at",
}

// Repository репозиторий для работы с блокировками расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория блокировок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает блокировку расписания.
// Таблица schedule_blocks защищена собственным exclusion constraint,
// поэтому две пересекающиеся блокировки не могут быть вставлены даже
// конкурентно — ошибка транслируется в ErrSlotTaken.
func (r *Repository) Create(ctx context.Context, block *domain.ScheduleBlock) (*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedule_blocks").
		Columns("field_id", "start_time", "end_time", "reason").
		Values(block.FieldID, block.StartTime, block.EndTime, block.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgExclusionViolation {
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// GetOverlapping получает блокировки поля, пересекающиеся с интервалом
// (полуоткрытая семантика). Внутри пишущей транзакции добавляет FOR UPDATE.
func (r *Repository) GetOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Lt{"start_time": interval.End}).
		Where(squirrel.Gt{"end_time": interval.Start}).
		OrderBy("start_time ASC")

	if dbmetrics.IsLockingTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// GetByFieldID получает все блокировки поля, опционально ограниченные периодом
func (r *Repository) GetByFieldID(ctx context.Context, fieldID int64, from, to *time.Time) ([]*domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(blockColumns...).
		From("schedule_blocks").
		Where(squirrel.Eq{"field_id": fieldID}).
		OrderBy("start_time ASC")

	if to != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *to})
	}
	if from != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *from})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// Delete удаляет блокировку расписания. Условие по field_id не дает
// удалить блокировку через URL чужого поля.
func (r *Repository) Delete(ctx context.Context, id, fieldID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedule_blocks").
		Where(squirrel.Eq{"id": id, "field_id": fieldID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}

// scanBlocks сканирует результаты запроса в слайс блокировок
func scanBlocks(rows *sql.Rows) ([]*domain.ScheduleBlock, error) {
	blocks := make([]*domain.ScheduleBlock, 0)

	for rows.Next() {
		var block domain.ScheduleBlock
		var createdAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.FieldID,
			&block.StartTime,
			&block.EndTime,
			&block.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
