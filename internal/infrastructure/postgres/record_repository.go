package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

var _ repository.RecordRepository = (*RecordRepo)(nil)

// RecordRepo implementación de RecordRepository sobre PostgreSQL (usable con pool o tx).
// Es el registrador de cambios: los motores escriben aquí sus deltas dentro
// de la misma transacción que la mutación.
type RecordRepo struct {
	q Querier
}

// NewRecordRepository construye el adaptador del historial. Pasar pool o tx (Querier).
func NewRecordRepository(q Querier) *RecordRepo {
	return &RecordRepo{q: q}
}

const recordColumns = `id, household_id, user_name, operate_type, entity_type, record_type,
		item_name_old, item_name_new, item_description_old, item_description_new,
		item_photo_old, item_photo_new, category_name_old, category_name_new,
		room_name_old, room_name_new, cabinet_name_old, cabinet_name_new,
		quantity_count_old, quantity_count_new, min_stock_count_old, min_stock_count_new,
		description, created_at`

// Create inserta un delta del historial.
func (r *RecordRepo) Create(record *entity.Record) error {
	query := `
		INSERT INTO record (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(context.Background(), query,
		record.ID, record.HouseholdID, record.UserName, record.OperateType, record.EntityType, record.RecordType,
		record.ItemNameOld, record.ItemNameNew, record.ItemDescriptionOld, record.ItemDescriptionNew,
		record.ItemPhotoOld, record.ItemPhotoNew, record.CategoryNameOld, record.CategoryNameNew,
		record.RoomNameOld, record.RoomNameNew, record.CabinetNameOld, record.CabinetNameNew,
		record.QuantityCountOld, record.QuantityCountNew, record.MinStockCountOld, record.MinStockCountNew,
		nullable(record.Description), record.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	return nil
}

// ListByHousehold lista los deltas del hogar, más recientes primero.
func (r *RecordRepo) ListByHousehold(householdID string, filter repository.RecordFilter) ([]*entity.Record, error) {
	query := `
		SELECT ` + recordColumns + `
		FROM record
		WHERE household_id = $1`
	where, args := recordFilters(filter, []any{householdID})
	query += where + `
		ORDER BY created_at DESC`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []*entity.Record
	for rows.Next() {
		var (
			rec   entity.Record
			descr *string
		)
		err := rows.Scan(
			&rec.ID, &rec.HouseholdID, &rec.UserName, &rec.OperateType, &rec.EntityType, &rec.RecordType,
			&rec.ItemNameOld, &rec.ItemNameNew, &rec.ItemDescriptionOld, &rec.ItemDescriptionNew,
			&rec.ItemPhotoOld, &rec.ItemPhotoNew, &rec.CategoryNameOld, &rec.CategoryNameNew,
			&rec.RoomNameOld, &rec.RoomNameNew, &rec.CabinetNameOld, &rec.CabinetNameNew,
			&rec.QuantityCountOld, &rec.QuantityCountNew, &rec.MinStockCountOld, &rec.MinStockCountNew,
			&descr, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Description = orEmpty(descr)
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// DeleteByHousehold purga deltas del hogar según los filtros.
func (r *RecordRepo) DeleteByHousehold(householdID string, filter repository.RecordFilter) error {
	query := `
		DELETE FROM record
		WHERE household_id = $1`
	where, args := recordFilters(filter, []any{householdID})
	query += where
	if _, err := r.q.Exec(context.Background(), query, args...); err != nil {
		return fmt.Errorf("delete records: %w", err)
	}
	return nil
}

// recordFilters arma las cláusulas WHERE adicionales según el filtro.
func recordFilters(filter repository.RecordFilter, args []any) (string, []any) {
	var b strings.Builder
	if filter.ID != "" {
		args = append(args, filter.ID)
		fmt.Fprintf(&b, " AND id = $%d", len(args))
	}
	if filter.OperateType != nil {
		args = append(args, *filter.OperateType)
		fmt.Fprintf(&b, " AND operate_type = $%d", len(args))
	}
	if filter.EntityType != nil {
		args = append(args, *filter.EntityType)
		fmt.Fprintf(&b, " AND entity_type = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		fmt.Fprintf(&b, " AND created_at >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		fmt.Fprintf(&b, " AND created_at <= $%d", len(args))
	}
	return b.String(), args
}
