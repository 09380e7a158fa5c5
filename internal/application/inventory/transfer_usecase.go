package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// TransferUseCase mueve stock entre ubicaciones del ledger de forma
// transaccional, con bloqueo de fila (SELECT FOR UPDATE) sobre el origen.
// Un traslado real conserva el total del artículo; un tramo delete-only
// destruye stock (el total baja exactamente en Amount).
type TransferUseCase struct {
	txRunner    TxRunner
	itemRepo    repository.ItemRepository
	cabinetRepo repository.CabinetRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, itemRepo repository.ItemRepository, cabinetRepo repository.CabinetRepository) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, itemRepo: itemRepo, cabinetRepo: cabinetRepo}
}

// TransferLeg un tramo origen→destino dentro de un traslado por lotes.
// DeleteOnly ignora To: el stock sale del ledger (retirar del inventario).
type TransferLeg struct {
	From       entity.LocationRef
	To         entity.LocationRef
	Amount     int
	DeleteOnly bool
}

// Transfer aplica una lista ordenada de tramos para un mismo artículo en una
// sola transacción. Cada tramo valida la suficiencia del origen contra el
// estado que dejaron los tramos anteriores del mismo lote, no contra la foto
// inicial. Si cualquier tramo falla no se aplica ninguno.
func (uc *TransferUseCase) Transfer(ctx context.Context, householdID, userName, itemID string, legs []TransferLeg) error {
	if len(legs) == 0 {
		return domain.ErrInvalidInput
	}

	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if item == nil || item.HouseholdID != householdID {
		return domain.ErrItemNotFound
	}

	// Validación previa de tramos: montos y ubicaciones. Ninguna mutación
	// ocurre antes de terminar toda la validación.
	cabinetIDs := make(map[string]bool)
	for _, leg := range legs {
		if leg.Amount <= 0 {
			return domain.ErrInvalidQuantity
		}
		if !leg.DeleteOnly && leg.From == leg.To {
			return domain.ErrInvalidTransfer
		}
		if leg.From.Assigned {
			cabinetIDs[leg.From.CabinetID] = true
		}
		if !leg.DeleteOnly && leg.To.Assigned {
			cabinetIDs[leg.To.CabinetID] = true
		}
	}

	cabinetNames, err := uc.resolveCabinets(householdID, cabinetIDs)
	if err != nil {
		return err
	}

	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error {
		for _, leg := range legs {
			if err := uc.applyLeg(ledgerRepo, recordRepo, item, leg, cabinetNames, householdID, userName, now); err != nil {
				return err
			}
		}
		return uc.warnIfBelowMinStock(ledgerRepo, recordRepo, item, userName, now)
	})
}

// applyLeg bloquea la fila origen, verifica suficiencia, decrementa (o
// elimina) el origen, incrementa (o crea) el destino y emite el delta.
func (uc *TransferUseCase) applyLeg(
	ledgerRepo repository.LedgerRepository,
	recordRepo repository.RecordRepository,
	item *entity.Item,
	leg TransferLeg,
	cabinetNames map[string]string,
	householdID, userName string,
	now time.Time,
) error {
	src, err := ledgerRepo.GetForUpdate(item.ID, leg.From)
	if err != nil {
		return err
	}
	if src.Quantity < leg.Amount {
		return domain.ErrInsufficientQuantity
	}
	srcBefore := src.Quantity
	srcAfter := srcBefore - leg.Amount
	if err := setQuantity(ledgerRepo, householdID, item.ID, leg.From, srcAfter, now); err != nil {
		return err
	}

	if !leg.DeleteOnly {
		dst, err := ledgerRepo.GetForUpdate(item.ID, leg.To)
		if err != nil {
			return err
		}
		if err := setQuantity(ledgerRepo, householdID, item.ID, leg.To, dst.Quantity+leg.Amount, now); err != nil {
			return err
		}
	}

	rec := &entity.Record{
		ID:               uuid.New().String(),
		HouseholdID:      householdID,
		UserName:         userName,
		OperateType:      entity.OperateUpdate,
		EntityType:       entity.EntityItem,
		RecordType:       entity.RecordNormal,
		ItemNameNew:      strPtr(item.Name),
		CabinetNameOld:   locationName(leg.From, cabinetNames),
		QuantityCountOld: intPtr(srcBefore),
		QuantityCountNew: intPtr(srcAfter),
		CreatedAt:        now,
	}
	if leg.DeleteOnly {
		rec.OperateType = entity.OperateDelete
	} else {
		rec.CabinetNameNew = locationName(leg.To, cabinetNames)
	}
	return recordRepo.Create(rec)
}

// warnIfBelowMinStock emite un registro de advertencia si el total del
// artículo quedó por debajo de su umbral de stock mínimo.
func (uc *TransferUseCase) warnIfBelowMinStock(
	ledgerRepo repository.LedgerRepository,
	recordRepo repository.RecordRepository,
	item *entity.Item,
	userName string,
	now time.Time,
) error {
	if item.MinStockAlert <= 0 {
		return nil
	}
	total, err := ledgerRepo.SumByItem(item.ID)
	if err != nil {
		return err
	}
	if total >= item.MinStockAlert {
		return nil
	}
	return recordRepo.Create(&entity.Record{
		ID:               uuid.New().String(),
		HouseholdID:      item.HouseholdID,
		UserName:         userName,
		OperateType:      entity.OperateUpdate,
		EntityType:       entity.EntityItem,
		RecordType:       entity.RecordWarning,
		ItemNameNew:      strPtr(item.Name),
		QuantityCountNew: intPtr(total),
		MinStockCountNew: intPtr(item.MinStockAlert),
		CreatedAt:        now,
	})
}

// resolveCabinets valida que cada gabinete exista y pertenezca al hogar;
// devuelve un mapa id→nombre para los deltas.
func (uc *TransferUseCase) resolveCabinets(householdID string, ids map[string]bool) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for id := range ids {
		cab, err := uc.cabinetRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if cab == nil || cab.HouseholdID != householdID {
			return nil, domain.ErrLocationNotFound
		}
		names[id] = cab.Name
	}
	return names, nil
}

// locationName devuelve el nombre del gabinete o nil para "sin asignar".
func locationName(loc entity.LocationRef, cabinetNames map[string]string) *string {
	if loc.IsUnassigned() {
		return nil
	}
	name := cabinetNames[loc.CabinetID]
	return &name
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
