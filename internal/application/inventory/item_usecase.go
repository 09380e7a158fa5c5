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

// ItemUseCase CRUD de artículos. Crear y eliminar tocan también el ledger
// (stock inicial y cascada de filas) dentro de la misma transacción, y cada
// mutación emite su delta al historial.
type ItemUseCase struct {
	txRunner     TxRunner
	itemRepo     repository.ItemRepository
	cabinetRepo  repository.CabinetRepository
	categoryRepo repository.CategoryRepository
	ledgerRepo   repository.LedgerRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	cabinetRepo repository.CabinetRepository,
	categoryRepo repository.CategoryRepository,
	ledgerRepo repository.LedgerRepository,
) *ItemUseCase {
	return &ItemUseCase{
		txRunner:     txRunner,
		itemRepo:     itemRepo,
		cabinetRepo:  cabinetRepo,
		categoryRepo: categoryRepo,
		ledgerRepo:   ledgerRepo,
	}
}

// Create crea un artículo y, si trae cantidad inicial, su fila de ledger en
// el gabinete indicado (o "sin asignar").
func (uc *ItemUseCase) Create(ctx context.Context, householdID, userName string, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if in.MinStockAlert < 0 {
		return nil, domain.ErrInvalidInput
	}

	var categoryName *string
	if in.CategoryID != "" {
		cat, err := uc.requireCategory(householdID, in.CategoryID)
		if err != nil {
			return nil, err
		}
		categoryName = strPtr(cat.Name)
	}

	loc := entity.Unassigned()
	var cabinetName *string
	if in.CabinetID != "" {
		cab, err := uc.cabinetRepo.GetByID(in.CabinetID)
		if err != nil {
			return nil, err
		}
		if cab == nil || cab.HouseholdID != householdID {
			return nil, domain.ErrLocationNotFound
		}
		loc = entity.AtCabinet(cab.ID)
		cabinetName = strPtr(cab.Name)
	}

	now := time.Now()
	item := &entity.Item{
		ID:            uuid.New().String(),
		HouseholdID:   householdID,
		CategoryID:    in.CategoryID,
		Name:          name,
		Description:   in.Description,
		MinStockAlert: in.MinStockAlert,
		Photo:         in.Photo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := itemRepo.Create(item); err != nil {
			return err
		}
		if in.Quantity > 0 {
			if err := setQuantity(ledgerRepo, householdID, item.ID, loc, in.Quantity, now); err != nil {
				return err
			}
		}
		return recordRepo.Create(&entity.Record{
			ID:               uuid.New().String(),
			HouseholdID:      householdID,
			UserName:         userName,
			OperateType:      entity.OperateCreate,
			EntityType:       entity.EntityItem,
			RecordType:       entity.RecordNormal,
			ItemNameNew:      strPtr(item.Name),
			CabinetNameNew:   cabinetName,
			CategoryNameNew:  categoryName,
			QuantityCountNew: intPtr(in.Quantity),
			MinStockCountNew: intPtr(in.MinStockAlert),
			CreatedAt:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// Update actualiza atributos normales (nombre, descripción, umbral, foto,
// categoría). La cantidad y la ubicación se mueven con TransferUseCase.
func (uc *ItemUseCase) Update(ctx context.Context, householdID, userName, itemID string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.requireItem(householdID, itemID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	rec := &entity.Record{
		ID:          uuid.New().String(),
		HouseholdID: householdID,
		UserName:    userName,
		OperateType: entity.OperateUpdate,
		EntityType:  entity.EntityItem,
		RecordType:  entity.RecordNormal,
		CreatedAt:   now,
	}
	changed := false

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		if name != item.Name {
			rec.ItemNameOld = strPtr(item.Name)
			rec.ItemNameNew = strPtr(name)
			item.Name = name
			changed = true
		}
	}
	if in.Description != nil && *in.Description != item.Description {
		rec.ItemDescriptionOld = strPtr(item.Description)
		rec.ItemDescriptionNew = strPtr(*in.Description)
		item.Description = *in.Description
		changed = true
	}
	if in.MinStockAlert != nil {
		if *in.MinStockAlert < 0 {
			return nil, domain.ErrInvalidInput
		}
		if *in.MinStockAlert != item.MinStockAlert {
			rec.MinStockCountOld = intPtr(item.MinStockAlert)
			rec.MinStockCountNew = intPtr(*in.MinStockAlert)
			item.MinStockAlert = *in.MinStockAlert
			changed = true
		}
	}
	if in.Photo != nil && *in.Photo != item.Photo {
		rec.ItemPhotoOld = strPtr(item.Photo)
		rec.ItemPhotoNew = strPtr(*in.Photo)
		item.Photo = *in.Photo
		changed = true
	}
	if in.CategoryID != nil && *in.CategoryID != item.CategoryID {
		oldName, err := uc.categoryNameOf(item.CategoryID)
		if err != nil {
			return nil, err
		}
		var newName *string
		if *in.CategoryID != "" {
			cat, err := uc.requireCategory(householdID, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			newName = strPtr(cat.Name)
		}
		rec.CategoryNameOld = oldName
		rec.CategoryNameNew = newName
		item.CategoryID = *in.CategoryID
		changed = true
	}

	if !changed {
		return uc.toResponse(item)
	}
	item.UpdatedAt = now

	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		itemRepo repository.ItemRepository,
		cabinetRepo repository.CabinetRepository,
		recordRepo repository.RecordRepository,
	) error {
		if err := itemRepo.Update(item); err != nil {
			return err
		}
		return recordRepo.Create(rec)
	})
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// Delete elimina el artículo y en cascada todas sus filas del ledger.
func (uc *ItemUseCase) Delete(ctx context.Context, householdID, userName, itemID string) error {
	item, err := uc.requireItem(householdID, itemID)
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
		if err := ledgerRepo.DeleteByItem(item.ID); err != nil {
			return err
		}
		if err := itemRepo.Delete(item.ID); err != nil {
			return err
		}
		return recordRepo.Create(&entity.Record{
			ID:          uuid.New().String(),
			HouseholdID: householdID,
			UserName:    userName,
			OperateType: entity.OperateDelete,
			EntityType:  entity.EntityItem,
			RecordType:  entity.RecordNormal,
			ItemNameOld: strPtr(item.Name),
			CreatedAt:   now,
		})
	})
}

// GetByID devuelve un artículo con su desglose de stock.
func (uc *ItemUseCase) GetByID(householdID, itemID string) (*dto.ItemResponse, error) {
	item, err := uc.requireItem(householdID, itemID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(item)
}

// List lista artículos del hogar con filtros opcionales.
func (uc *ItemUseCase) List(householdID string, in dto.ListItemsRequest) ([]dto.ItemResponse, error) {
	items, err := uc.itemRepo.ListByHousehold(householdID, repository.ItemFilter{
		CabinetID:   in.CabinetID,
		CategoryIDs: in.CategoryIDs,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, item := range items {
		resp, err := uc.toResponse(item)
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

func (uc *ItemUseCase) requireItem(householdID, itemID string) (*entity.Item, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.HouseholdID != householdID {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (uc *ItemUseCase) requireCategory(householdID, categoryID string) (*entity.Category, error) {
	cat, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil || cat.HouseholdID != householdID {
		return nil, domain.ErrCategoryNotFound
	}
	return cat, nil
}

func (uc *ItemUseCase) categoryNameOf(categoryID string) (*string, error) {
	if categoryID == "" {
		return nil, nil
	}
	cat, err := uc.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, nil // referencia débil: la categoría pudo ser eliminada
	}
	return strPtr(cat.Name), nil
}

// toResponse arma la respuesta con categoría y desglose de stock por gabinete.
func (uc *ItemUseCase) toResponse(item *entity.Item) (*dto.ItemResponse, error) {
	resp := &dto.ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Description:   item.Description,
		MinStockAlert: item.MinStockAlert,
		Photo:         item.Photo,
		Stock:         []dto.StockSlotResponse{},
	}

	if item.CategoryID != "" {
		cat, err := uc.categoryRepo.GetByID(item.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			resp.Category = &dto.CategoryResponse{
				ID:       cat.ID,
				Name:     cat.Name,
				ParentID: cat.ParentID,
				Level:    cat.Level,
			}
		}
	}

	entries, err := uc.ledgerRepo.ListByItem(item.ID)
	if err != nil {
		return nil, err
	}
	cabinetIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Location.Assigned {
			cabinetIDs = append(cabinetIDs, e.Location.CabinetID)
		}
	}
	names := make(map[string]string, len(cabinetIDs))
	if len(cabinetIDs) > 0 {
		cabinets, err := uc.cabinetRepo.GetByIDs(item.HouseholdID, cabinetIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range cabinets {
			names[c.ID] = c.Name
		}
	}
	for _, e := range entries {
		slot := dto.StockSlotResponse{Quantity: e.Quantity}
		if e.Location.Assigned {
			slot.CabinetID = e.Location.CabinetID
			slot.CabinetName = names[e.Location.CabinetID]
		}
		resp.Stock = append(resp.Stock, slot)
		resp.Quantity += e.Quantity
	}
	return resp, nil
}
