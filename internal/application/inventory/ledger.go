package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// setQuantity fija la cantidad de (artículo, ubicación) en el ledger.
// Cantidad negativa es ErrInvalidQuantity; cantidad 0 elimina la fila (no se
// acumulan filas en cero); en otro caso hace upsert. Debe llamarse con un
// repositorio atado a la transacción en curso.
func setQuantity(ledgerRepo repository.LedgerRepository, householdID, itemID string, loc entity.LocationRef, qty int, now time.Time) error {
	if qty < 0 {
		return domain.ErrInvalidQuantity
	}
	entry, err := ledgerRepo.Get(itemID, loc)
	if err != nil {
		return err
	}
	if qty == 0 {
		if entry.ID == "" {
			return nil // no había fila: nada que eliminar
		}
		return ledgerRepo.Delete(itemID, loc)
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
		entry.HouseholdID = householdID
		entry.CreatedAt = now
	}
	entry.Quantity = qty
	entry.UpdatedAt = now
	return ledgerRepo.Upsert(entry)
}

// LedgerUseCase consultas de solo lectura sobre el ledger de cantidades.
type LedgerUseCase struct {
	ledgerRepo repository.LedgerRepository
	itemRepo   repository.ItemRepository
}

// NewLedgerUseCase construye el caso de uso de consulta.
func NewLedgerUseCase(ledgerRepo repository.LedgerRepository, itemRepo repository.ItemRepository) *LedgerUseCase {
	return &LedgerUseCase{ledgerRepo: ledgerRepo, itemRepo: itemRepo}
}

// GetQuantity devuelve la cantidad de un artículo en una ubicación; 0 si no
// hay fila (la ausencia no es error).
func (uc *LedgerUseCase) GetQuantity(householdID, itemID string, loc entity.LocationRef) (int, error) {
	if _, err := uc.requireItem(householdID, itemID); err != nil {
		return 0, err
	}
	entry, err := uc.ledgerRepo.Get(itemID, loc)
	if err != nil {
		return 0, err
	}
	return entry.Quantity, nil
}

// TotalQuantity devuelve el stock total del artículo sumando todas sus
// ubicaciones, incluida "sin asignar".
func (uc *LedgerUseCase) TotalQuantity(householdID, itemID string) (int, error) {
	if _, err := uc.requireItem(householdID, itemID); err != nil {
		return 0, err
	}
	return uc.ledgerRepo.SumByItem(itemID)
}

// ListByItem devuelve el desglose por ubicación de un artículo.
func (uc *LedgerUseCase) ListByItem(householdID, itemID string) ([]*entity.LedgerEntry, error) {
	if _, err := uc.requireItem(householdID, itemID); err != nil {
		return nil, err
	}
	return uc.ledgerRepo.ListByItem(itemID)
}

func (uc *LedgerUseCase) requireItem(householdID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.HouseholdID != householdID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
