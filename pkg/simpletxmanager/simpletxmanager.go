// Package simpletxmanager менеджер транзакций над голым *sql.DB (без метрик).
// Контракт тот же, что у txmanager — вызывающий код не зависит от реализации.
package simpletxmanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/SMC-FieldBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-FieldBookingService/pkg/txmanager"
)

// TransactionManager менеджер транзакций без сбора метрик
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает новый менеджер транзакций
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в сериализуемой транзакции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) do(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", txmanager.ErrBeginTx, err)
	}

	txCtx := dbmetrics.WithExecutor(ctx, tx)
	if opts.ReadOnly {
		txCtx = dbmetrics.WithReadOnlyExecutor(ctx, tx)
	}

	if err := fn(txCtx); err != nil {
		_ = tx.Rollback()
		if txmanager.IsSerializationFailure(err) {
			return fmt.Errorf("%w: %v", txmanager.ErrSerialization, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		if txmanager.IsSerializationFailure(err) {
			return fmt.Errorf("%w: %v", txmanager.ErrSerialization, err)
		}
		return fmt.Errorf("%w: %v", txmanager.ErrCommitTx, err)
	}

	return nil
}
