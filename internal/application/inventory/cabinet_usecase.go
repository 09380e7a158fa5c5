package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
	"github.com/jhoicas/hogar-api/internal/domain/repository"
)

// CabinetUseCase CRUD de gabinetes. Al eliminar un gabinete su stock no se
// pierde: cada fila del ledger se pliega a la fila "sin asignar" del mismo
// artículo dentro de la transacción de borrado.
type CabinetUseCase struct {
	txRunner    TxRunner
	cabinetRepo repository.CabinetRepository
}

// NewCabinetUseCase construye el caso de uso.
func NewCabinetUseCase(txRunner TxRunner, cabinetRepo repository.CabinetRepository) *CabinetUseCase {
	return &CabinetUseCase{txRunner: txRunner, cabinetRepo: cabinetRepo}
}

// Create crea un gabinete.
func (uc *CabinetUseCase) Create(ctx context.Context, householdID, userName string, in dto.CreateCabinetRequest) (*dto.CabinetResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	now := time.Now()
	cabinet := &entity.Cabinet{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		RoomID:      in.RoomID,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := cabinetRepo.Create(cabinet); err != nil {
			return err
		}
		return recordRepo.Create(&entity.Record{
			ID:             uuid.New().String(),
			HouseholdID:    householdID,
			UserName:       userName,
			OperateType:    entity.OperateCreate,
			EntityType:     entity.EntityCabinet,
			RecordType:     entity.RecordNormal,
			CabinetNameNew: strPtr(cabinet.Name),
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toCabinetResponse(cabinet), nil
}

// Update renombra o reubica (habitación) un gabinete.
func (uc *CabinetUseCase) Update(ctx context.Context, householdID, userName, cabinetID string, in dto.UpdateCabinetRequest) (*dto.CabinetResponse, error) {
	cabinet, err := uc.requireCabinet(householdID, cabinetID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	rec := &entity.Record{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		UserName:    userName,
		OperateType: entity.OperateUpdate,
		EntityType:  entity.EntityCabinet,
		RecordType:  entity.RecordNormal,
		CreatedAt:   now,
	}
	changed := false
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		if name != cabinet.Name {
			rec.CabinetNameOld = strPtr(cabinet.Name)
			rec.CabinetNameNew = strPtr(name)
			cabinet.Name = name
			changed = true
		}
	}
	if in.RoomID != nil && *in.RoomID != cabinet.RoomID {
		cabinet.RoomID = *in.RoomID
		changed = true
	}
	if !changed {
		return toCabinetResponse(cabinet), nil
	}
	cabinet.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := cabinetRepo.Update(cabinet); err != nil {
			return err
		}
		return recordRepo.Create(rec)
	})
	if err != nil {
		return nil, err
	}
	return toCabinetResponse(cabinet), nil
}

// Delete elimina un gabinete plegando su stock a "sin asignar".
func (uc *CabinetUseCase) Delete(ctx context.Context, householdID, userName, cabinetID string) error {
	cabinet, err := uc.requireCabinet(householdID, cabinetID)
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
		entries, err := ledgerRepo.ListByCabinet(cabinet.ID)
		if err != nil {
			return err
		}
		for _, e := range entries {
			// Bloquear ambas filas y fusionar la cantidad en "sin asignar".
			src, err := ledgerRepo.GetForUpdate(e.ItemID, e.Location)
			if err != nil {
				return err
			}
			dst, err := ledgerRepo.GetForUpdate(e.ItemID, entity.Unassigned())
			if err != nil {
				return err
			}
			if err := setQuantity(ledgerRepo, e.HouseholdID, e.ItemID, e.Location, 0, now); err != nil {
				return err
			}
			if err := setQuantity(ledgerRepo, e.HouseholdID, e.ItemID, entity.Unassigned(), dst.Quantity+src.Quantity, now); err != nil {
				return err
			}
		}
		if err := cabinetRepo.Delete(cabinet.ID); err != nil {
			return err
		}
		return recordRepo.Create(&entity.Record{
			ID:             uuid.New().String(),
			HouseholdID:    householdID,
			UserName:       userName,
			OperateType:    entity.OperateDelete,
			EntityType:     entity.EntityCabinet,
			RecordType:     entity.RecordNormal,
			CabinetNameOld: strPtr(cabinet.Name),
			CreatedAt:      now,
		})
	})
}

// GetByID obtiene un gabinete del hogar.
func (uc *CabinetUseCase) GetByID(householdID, cabinetID string) (*dto.CabinetResponse, error) {
	cabinet, err := uc.requireCabinet(householdID, cabinetID)
	if err != nil {
		return nil, err
	}
	return toCabinetResponse(cabinet), nil
}

// List lista los gabinetes del hogar.
func (uc *CabinetUseCase) List(householdID string) ([]dto.CabinetResponse, error) {
	list, err := uc.cabinetRepo.ListByHousehold(householdID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CabinetResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCabinetResponse(c))
	}
	return out, nil
}

func (uc *CabinetUseCase) requireCabinet(householdID, cabinetID string) (*entity.Cabinet, error) {
	cabinet, err := uc.cabinetRepo.GetByID(cabinetID)
	if err != nil {
		return nil, err
	}
	if cabinet == nil || cabinet.HouseholdID != householdID {
		return nil, domain.ErrLocationNotFound
	}
	return cabinet, nil
}

func toCabinetResponse(c *entity.Cabinet) *dto.CabinetResponse {
	return &dto.CabinetResponse{ID: c.ID, Name: c.Name, RoomID: c.RoomID}
}
