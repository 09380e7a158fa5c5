package repository

import "github.com/jhoicas/hogar-api/internal/domain/entity"

// CabinetRepository define el puerto de persistencia para Cabinet (DIP).
type CabinetRepository interface {
	Create(cabinet *entity.Cabinet) error
	GetByID(id string) (*entity.Cabinet, error)
	GetByIDs(householdID string, ids []string) ([]*entity.Cabinet, error)
	ListByHousehold(householdID string) ([]*entity.Cabinet, error)
	Update(cabinet *entity.Cabinet) error
	Delete(id string) error
}
