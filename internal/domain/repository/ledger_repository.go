package repository

import "github.com/jhoicas/hogar-api/internal/domain/entity"

// LedgerRepository define el puerto de persistencia para el ledger de
// cantidades por (artículo, ubicación). Get y GetForUpdate nunca fallan por
// ausencia: devuelven una fila con cantidad 0.
type LedgerRepository interface {
	Get(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error)
	// GetForUpdate obtiene la fila y la bloquea (SELECT ... FOR UPDATE) para
	// serializar decrementos concurrentes dentro de la transacción.
	GetForUpdate(itemID string, loc entity.LocationRef) (*entity.LedgerEntry, error)
	Upsert(entry *entity.LedgerEntry) error
	Delete(itemID string, loc entity.LocationRef) error
	ListByItem(itemID string) ([]*entity.LedgerEntry, error)
	SumByItem(itemID string) (int, error)
	DeleteByItem(itemID string) error
	// ListByCabinet lista las filas de un gabinete (para plegarlas a "sin
	// asignar" cuando el gabinete se elimina).
	ListByCabinet(cabinetID string) ([]*entity.LedgerEntry, error)
}
