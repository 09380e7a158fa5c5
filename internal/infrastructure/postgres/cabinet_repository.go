package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

var _ repository.CabinetRepository = (*CabinetRepo)(nil)

// CabinetRepo implementación de CabinetRepository sobre PostgreSQL (usable con pool o tx).
type CabinetRepo struct {
	q Querier
}

// NewCabinetRepository construye el adaptador de gabinetes. Pasar pool o tx (Querier).
func NewCabinetRepository(q Querier) *CabinetRepo {
	return &CabinetRepo{q: q}
}

// Create inserta un gabinete.
func (r *CabinetRepo) Create(cabinet *entity.Cabinet) error {
	query := `
		INSERT INTO cabinet (id, household_id, room_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		cabinet.ID, cabinet.HouseholdID, nullable(cabinet.RoomID), cabinet.Name, cabinet.CreatedAt, cabinet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create cabinet: %w", err)
	}
	return nil
}

// GetByID obtiene un gabinete por ID; nil si no existe.
func (r *CabinetRepo) GetByID(id string) (*entity.Cabinet, error) {
	query := `
		SELECT id, household_id, room_id, name, created_at, updated_at
		FROM cabinet WHERE id = $1`
	c, err := scanCabinet(r.q.QueryRow(context.Background(), query, id).Scan)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cabinet: %w", err)
	}
	return c, nil
}

// GetByIDs obtiene varios gabinetes del hogar por ID.
func (r *CabinetRepo) GetByIDs(householdID string, ids []string) ([]*entity.Cabinet, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `
		SELECT id, household_id, room_id, name, created_at, updated_at
		FROM cabinet WHERE household_id = $1 AND id = ANY($2)`
	return r.list(query, householdID, ids)
}

// ListByHousehold lista los gabinetes del hogar.
func (r *CabinetRepo) ListByHousehold(householdID string) ([]*entity.Cabinet, error) {
	query := `
		SELECT id, household_id, room_id, name, created_at, updated_at
		FROM cabinet WHERE household_id = $1
		ORDER BY created_at`
	return r.list(query, householdID)
}

// Update actualiza un gabinete.
func (r *CabinetRepo) Update(cabinet *entity.Cabinet) error {
	query := `
		UPDATE cabinet SET room_id = $2, name = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		cabinet.ID, nullable(cabinet.RoomID), cabinet.Name, cabinet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update cabinet: %w", err)
	}
	return nil
}

// Delete elimina un gabinete por ID.
func (r *CabinetRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM cabinet WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete cabinet: %w", err)
	}
	return nil
}

func (r *CabinetRepo) list(query string, args ...any) ([]*entity.Cabinet, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cabinets: %w", err)
	}
	defer rows.Close()

	var out []*entity.Cabinet
	for rows.Next() {
		c, err := scanCabinet(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan cabinet: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCabinet(scan func(dest ...any) error) (*entity.Cabinet, error) {
	var (
		c      entity.Cabinet
		roomID *string
	)
	if err := scan(&c.ID, &c.HouseholdID, &roomID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.RoomID = orEmpty(roomID)
	return &c, nil
}
