package repository

import "github.com/jhoicas/hogar-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	// GetForUpdate obtiene la categoría y bloquea su fila (SELECT ... FOR
	// UPDATE) para que la validación y la mutación de una transacción vean
	// el mismo estado frente a escritores concurrentes.
	GetForUpdate(id string) (*entity.Category, error)
	ListByHousehold(householdID string) ([]*entity.Category, error)
	// ListByParent lista los hijos directos; parentID vacío lista las raíces.
	ListByParent(householdID, parentID string) ([]*entity.Category, error)
	// ExistsSiblingName indica si ya hay una categoría con ese nombre bajo el
	// mismo padre (parentID vacío = grupo de raíces) en el hogar.
	ExistsSiblingName(householdID, parentID, name string) (bool, error)
	Update(category *entity.Category) error
	DeleteByIDs(ids []string) error
}
