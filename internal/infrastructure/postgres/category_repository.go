package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create inserta una categoría. La unicidad (household_id, parent_id, name)
// también está garantizada por constraint; una violación se traduce a
// ErrDuplicateName por si dos transacciones crean a la vez.
func (r *CategoryRepo) Create(category *entity.Category) error {
	query := `
		INSERT INTO category (id, household_id, parent_id, name, level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.HouseholdID, nullable(category.ParentID), category.Name,
		category.Level, category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID; nil si no existe.
func (r *CategoryRepo) GetByID(id string) (*entity.Category, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la categoría bloqueando su fila (SELECT ... FOR UPDATE).
// Solo tiene sentido con un Querier ligado a una transacción.
func (r *CategoryRepo) GetForUpdate(id string) (*entity.Category, error) {
	return r.get(id, true)
}

func (r *CategoryRepo) get(id string, forUpdate bool) (*entity.Category, error) {
	query := `
		SELECT id, household_id, parent_id, name, level, created_at, updated_at
		FROM category WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	c, err := scanCategory(r.q.QueryRow(context.Background(), query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return c, nil
}

// ListByHousehold lista todas las categorías del hogar ordenadas por nivel.
func (r *CategoryRepo) ListByHousehold(householdID string) ([]*entity.Category, error) {
	query := `
		SELECT id, household_id, parent_id, name, level, created_at, updated_at
		FROM category WHERE household_id = $1
		ORDER BY level, name`
	return r.list(query, householdID)
}

// ListByParent lista los hijos directos; parentID vacío lista las raíces.
func (r *CategoryRepo) ListByParent(householdID, parentID string) ([]*entity.Category, error) {
	query := `
		SELECT id, household_id, parent_id, name, level, created_at, updated_at
		FROM category
		WHERE household_id = $1 AND parent_id IS NOT DISTINCT FROM $2
		ORDER BY name`
	return r.list(query, householdID, nullable(parentID))
}

// ExistsSiblingName indica si ya hay una categoría con ese nombre bajo el
// mismo padre (parentID vacío = grupo de raíces) en el hogar.
func (r *CategoryRepo) ExistsSiblingName(householdID, parentID, name string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM category
			WHERE household_id = $1 AND parent_id IS NOT DISTINCT FROM $2 AND name = $3
		)`
	var exists bool
	err := r.q.QueryRow(context.Background(), query, householdID, nullable(parentID), name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists sibling name: %w", err)
	}
	return exists, nil
}

// Update actualiza nombre, padre y nivel de una categoría.
func (r *CategoryRepo) Update(category *entity.Category) error {
	query := `
		UPDATE category SET parent_id = $2, name = $3, level = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, nullable(category.ParentID), category.Name, category.Level, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteByIDs elimina un lote de categorías (subárbol completo) de una vez.
func (r *CategoryRepo) DeleteByIDs(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if _, err := r.q.Exec(context.Background(), `DELETE FROM category WHERE id = ANY($1)`, ids); err != nil {
		return fmt.Errorf("delete categories: %w", err)
	}
	return nil
}

func (r *CategoryRepo) list(query string, args ...any) ([]*entity.Category, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []*entity.Category
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCategory(scan func(dest ...any) error) (*entity.Category, error) {
	var (
		c        entity.Category
		parentID *string
	)
	if err := scan(&c.ID, &c.HouseholdID, &parentID, &c.Name, &c.Level, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.ParentID = orEmpty(parentID)
	return &c, nil
}
