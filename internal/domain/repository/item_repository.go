package repository

import "github.com/jhoicas/hogar-api/internal/domain/entity"

// ItemFilter filtros opcionales para listar artículos.
type ItemFilter struct {
	CabinetID   string   // filtra por gabinete (vía ledger)
	CategoryIDs []string // filtra por categorías
}

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	ListByHousehold(householdID string, filter ItemFilter) ([]*entity.Item, error)
	Update(item *entity.Item) error
	Delete(id string) error
	// ClearCategoryRefs deja sin categoría a los artículos que referencian
	// cualquiera de las categorías indicadas (borrado en cascada de categorías).
	ClearCategoryRefs(householdID string, categoryIDs []string) error
}
