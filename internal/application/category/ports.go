package category

import (
	"context"

	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios que necesita el motor de jerarquía. Reparentar y eliminar
// tocan subárboles completos: o se aplican enteros o no se aplica nada.
type TxRunner interface {
	RunCategory(ctx context.Context, fn func(
		categoryRepo repository.CategoryRepository,
		itemRepo repository.ItemRepository,
		recordRepo repository.RecordRepository,
	) error) error
}
