package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de artículos. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create inserta un artículo.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO item (id, household_id, category_id, name, description, min_stock_alert, photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.HouseholdID, nullable(item.CategoryID), item.Name, nullable(item.Description),
		item.MinStockAlert, nullable(item.Photo), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, household_id, category_id, name, description, min_stock_alert, photo, created_at, updated_at
		FROM item WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// ListByHousehold lista artículos del hogar con filtros opcionales.
func (r *ItemRepo) ListByHousehold(householdID string, filter repository.ItemFilter) ([]*entity.Item, error) {
	query := `
		SELECT i.id, i.household_id, i.category_id, i.name, i.description, i.min_stock_alert, i.photo, i.created_at, i.updated_at
		FROM item i
		WHERE i.household_id = $1`
	args := []any{householdID}

	if filter.CabinetID != "" {
		args = append(args, filter.CabinetID)
		query += fmt.Sprintf(`
		AND EXISTS (
			SELECT 1 FROM item_cabinet_quantity q
			WHERE q.item_id = i.id AND q.cabinet_id = $%d
		)`, len(args))
	}
	if len(filter.CategoryIDs) > 0 {
		args = append(args, filter.CategoryIDs)
		query += fmt.Sprintf(`
		AND i.category_id = ANY($%d)`, len(args))
	}
	query += `
		ORDER BY i.created_at`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var out []*entity.Item
	for rows.Next() {
		item, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// Update actualiza los atributos normales de un artículo.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE item
		SET category_id = $2, name = $3, description = $4, min_stock_alert = $5, photo = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, nullable(item.CategoryID), item.Name, nullable(item.Description),
		item.MinStockAlert, nullable(item.Photo), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM item WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ClearCategoryRefs deja sin categoría a los artículos que referencian las
// categorías indicadas (referencia débil: nunca cascada al artículo).
func (r *ItemRepo) ClearCategoryRefs(householdID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	query := `
		UPDATE item SET category_id = NULL, updated_at = now()
		WHERE household_id = $1 AND category_id = ANY($2)`
	if _, err := r.q.Exec(context.Background(), query, householdID, categoryIDs); err != nil {
		return fmt.Errorf("clear item category refs: %w", err)
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (r *ItemRepo) scanRow(rows pgx.Rows) (*entity.Item, error) {
	item, err := scanItem(rows.Scan)
	if err != nil {
		return nil, fmt.Errorf("scan item: %w", err)
	}
	return item, nil
}

func scanItem(scan func(dest ...any) error) (*entity.Item, error) {
	var (
		i                           entity.Item
		categoryID, descr, photoRef *string
	)
	err := scan(&i.ID, &i.HouseholdID, &categoryID, &i.Name, &descr, &i.MinStockAlert, &photoRef, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	i.CategoryID = orEmpty(categoryID)
	i.Description = orEmpty(descr)
	i.Photo = orEmpty(photoRef)
	return &i, nil
}
