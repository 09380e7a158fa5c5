package inventory

import (
	"context"

	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el ledger: o se
// aplican todos los tramos de una operación o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error) error
}
