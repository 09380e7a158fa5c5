package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/hogar-api/internal/application/category"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// Ensure TxRunner implements inventory.TxRunner and category.TxRunner.
var _ inventory.TxRunner = (*TxRunner)(nil)
var _ category.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	itemRepo repository.ItemRepository,
	cabinetRepo repository.CabinetRepository,
	recordRepo repository.RecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ledgerRepo := NewLedgerRepository(tx)
	itemRepo := NewItemRepository(tx)
	cabinetRepo := NewCabinetRepository(tx)
	recordRepo := NewRecordRepository(tx)

	if err := fn(ledgerRepo, itemRepo, cabinetRepo, recordRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCategory inicia una transacción con los repos del motor de jerarquía.
func (r *TxRunner) RunCategory(ctx context.Context, fn func(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.ItemRepository,
	recordRepo repository.RecordRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	categoryRepo := NewCategoryRepository(tx)
	itemRepo := NewItemRepository(tx)
	recordRepo := NewRecordRepository(tx)

	if err := fn(categoryRepo, itemRepo, recordRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
