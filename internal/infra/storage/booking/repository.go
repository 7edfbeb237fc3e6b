package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-FieldBookingService/internal/domain"
	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL, означающие проигранную гонку за слот
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

var bookingColumns = []string{
	"id",
	"field_id",
	"owner_id",
	"start_time",
	"end_time",
	"status",
	"total_price",
	"applied_promotion_id",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
//
// Таблица bookings защищена exclusion constraint по (field_id, интервал)
// для активных статусов: вставка пересекающегося интервала завершается
// ошибкой 23P01, которая транслируется в ErrSlotTaken. Это последний рубеж
// против гонки двух конкурентных reserve — проверка ConflictDetector'ом
// выполняется раньше, внутри той же транзакции.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"field_id",
			"owner_id",
			"start_time",
			"end_time",
			"status",
			"total_price",
			"applied_promotion_id",
		).
		Values(
			booking.FieldID,
			booking.OwnerID,
			booking.StartTime,
			booking.EndTime,
			booking.Status,
			booking.TotalPrice,
			booking.AppliedPromotionID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isSlotTaken(err) {
			return nil, fmt.Errorf("%w: Create: %v", ErrSlotTaken, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetOverlapping получает активные бронирования поля, пересекающиеся с интервалом.
// Полуоткрытая семантика: start_time < interval.End AND end_time > interval.Start,
// поэтому граничащие бронирования в выборку не попадают.
//
// Внутри пишущей транзакции добавляет FOR UPDATE — строки блокируются до
// конца транзакции, чтобы конкурентный reserve видел консистентный снимок.
// В read-only транзакции блокировки строк недопустимы и не добавляются.
func (r *Repository) GetOverlapping(ctx context.Context, fieldID int64, interval domain.Interval) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"field_id": fieldID}).
		Where(squirrel.Eq{"status": statusStrings(domain.ActiveStatuses)}).
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

	return scanBookings(rows)
}

// GetByFieldWithFilter получает бронирования поля с фильтрацией
// по периоду, статусу и включению отмененных
func (r *Repository) GetByFieldWithFilter(ctx context.Context, filter domain.FieldBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"field_id": filter.FieldID})

	// Фильтрация по периоду: берём бронирования, пересекающие [StartDate, EndDate)
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.EndDate})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.StartDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	query, args, err := selectBuilder.OrderBy("start_time ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFieldWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование из статуса from в статус to одним
// условным UPDATE. Если строка не найдена или статус уже не from
// (конкурентный переход, например отмена между чтением и confirm),
// запись не происходит и возвращается ErrStatusChanged — вызывающий код
// перечитывает бронирование и решает по фактическому состоянию.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(from)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// Cancel отменяет бронирование. Интервал немедленно освобождается:
// отмененные статусы исключены из exclusion constraint и из выборок пересечений.
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку в бронирование
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.FieldID,
		&booking.OwnerID,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.AppliedPromotionID,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isSlotTaken сообщает, означает ли ошибка нарушение exclusion/unique constraint
func isSlotTaken(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	code := string(pqErr.Code)
	return code == pgExclusionViolation || code == pgUniqueViolation
}

// statusStrings конвертирует статусы в строки для squirrel.Eq
func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
