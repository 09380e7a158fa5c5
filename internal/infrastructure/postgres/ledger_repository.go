package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación de LedgerRepository sobre PostgreSQL (usable con pool o tx).
// Tabla item_cabinet_quantity: única por (item_id, cabinet_id); cabinet_id
// NULL representa el pseudo-lugar "sin asignar".
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Get obtiene la fila de (artículo, ubicación). Si no existe devuelve una
// fila vacía con cantidad 0 (ID vacío), nunca error por ausencia.
func (r *LedgerRepo) Get(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error) {
	return r.get(itemID, loc, false)
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE) para
// serializar decrementos concurrentes.
func (r *LedgerRepo) GetForUpdate(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error) {
	return r.get(itemID, loc, true)
}

func (r *LedgerRepo) get(itemID string, loc entity.LocationRef, forUpdate bool) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, household_id, item_id, cabinet_id, quantity, created_at, updated_at
		FROM item_cabinet_quantity
		WHERE item_id = $1 AND cabinet_id IS NOT DISTINCT FROM $2`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	var (
		e         entity.LedgerEntry
		cabinetID *string
	)
	err := r.q.QueryRow(context.Background(), query, itemID, cabinetIDParam(loc)).Scan(
		&e.ID, &e.HouseholdID, &e.ItemID, &cabinetID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.LedgerEntry{ItemID: itemID, Location: loc}, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	e.Location = locationOf(cabinetID)
	return &e, nil
}

// Upsert inserta o actualiza la cantidad de (artículo, ubicación).
func (r *LedgerRepo) Upsert(entry *entity.LedgerEntry) error {
	query := `
		INSERT INTO item_cabinet_quantity (id, household_id, item_id, cabinet_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		ON CONFLICT (item_id, cabinet_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.HouseholdID, entry.ItemID, cabinetIDParam(entry.Location), entry.Quantity,
	)
	if err != nil {
		return fmt.Errorf("upsert ledger entry: %w", err)
	}
	return nil
}

// Delete elimina la fila de (artículo, ubicación) si existe.
func (r *LedgerRepo) Delete(itemID string, loc entity.LocationRef) error {
	query := `
		DELETE FROM item_cabinet_quantity
		WHERE item_id = $1 AND cabinet_id IS NOT DISTINCT FROM $2`
	_, err := r.q.Exec(context.Background(), query, itemID, cabinetIDParam(loc))
	if err != nil {
		return fmt.Errorf("delete ledger entry: %w", err)
	}
	return nil
}

// ListByItem devuelve todas las filas de un artículo ("sin asignar" primero).
func (r *LedgerRepo) ListByItem(itemID string) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, household_id, item_id, cabinet_id, quantity, created_at, updated_at
		FROM item_cabinet_quantity
		WHERE item_id = $1
		ORDER BY cabinet_id NULLS FIRST`
	return r.list(query, itemID)
}

// ListByCabinet devuelve todas las filas de un gabinete.
func (r *LedgerRepo) ListByCabinet(cabinetID string) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, household_id, item_id, cabinet_id, quantity, created_at, updated_at
		FROM item_cabinet_quantity
		WHERE cabinet_id = $1`
	return r.list(query, cabinetID)
}

// SumByItem suma el stock del artículo en todas sus ubicaciones.
func (r *LedgerRepo) SumByItem(itemID string) (int, error) {
	query := `
		SELECT COALESCE(SUM(quantity), 0)
		FROM item_cabinet_quantity
		WHERE item_id = $1`
	var total int
	if err := r.q.QueryRow(context.Background(), query, itemID).Scan(&total); err != nil {
		return 0, fmt.Errorf("sum ledger by item: %w", err)
	}
	return total, nil
}

// DeleteByItem elimina en cascada todas las filas del artículo.
func (r *LedgerRepo) DeleteByItem(itemID string) error {
	query := `DELETE FROM item_cabinet_quantity WHERE item_id = $1`
	if _, err := r.q.Exec(context.Background(), query, itemID); err != nil {
		return fmt.Errorf("delete ledger by item: %w", err)
	}
	return nil
}

func (r *LedgerRepo) list(query string, arg any) ([]*entity.LedgerEntry, error) {
	rows, err := r.q.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.LedgerEntry
	for rows.Next() {
		var (
			e         entity.LedgerEntry
			cabinetID *string
		)
		if err := rows.Scan(&e.ID, &e.HouseholdID, &e.ItemID, &cabinetID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Location = locationOf(cabinetID)
		out = append(out, &e)
	}
	return out, rows.Err()
}

// cabinetIDParam traduce LocationRef a la columna nullable cabinet_id.
func cabinetIDParam(loc entity.LocationRef) *string {
	if loc.IsUnassigned() {
		return nil
	}
	return &loc.CabinetID
}

func locationOf(cabinetID *string) entity.LocationRef {
	if cabinetID == nil {
		return entity.Unassigned()
	}
	return entity.AtCabinet(*cabinetID)
}
