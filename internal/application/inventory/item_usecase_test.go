package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hogar-api/internal/application/dto"
	"github.com/jhoicas/hogar-api/internal/application/inventory"
	"github.com/jhoicas/hogar-api/internal/domain"
	"github.com/jhoicas/hogar-api/internal/domain/entity"
)

func newItemFixture() (*memStore, *inventory.ItemUseCase) {
	s := newMemStore()
	seedCabinet(s, testHousehold, cabA, "Alacena")
	uc := inventory.NewItemUseCase(&memTxRunner{s}, &memItemRepo{s}, &memCabinetRepo{s}, &memCategoryRepo{s}, &memLedgerRepo{s})
	return s, uc
}

func TestItemCreate_ConStockInicialEnGabinete(t *testing.T) {
	s, uc := newItemFixture()

	resp, err := uc.Create(context.Background(), testHousehold, testUser, dto.CreateItemRequest{
		Name:      "  Tazas  ",
		CabinetID: cabA,
		Quantity:  6,
	})
	require.NoError(t, err)

	assert.Equal(t, "Tazas", resp.Name, "el nombre se guarda sin espacios de borde")
	assert.Equal(t, 6, resp.Quantity)
	require.Len(t, resp.Stock, 1)
	assert.Equal(t, cabA, resp.Stock[0].CabinetID)
	assert.Equal(t, "Alacena", resp.Stock[0].CabinetName)

	require.Len(t, s.records, 1)
	rec := s.records[0]
	assert.Equal(t, entity.OperateCreate, rec.OperateType)
	assert.Equal(t, "Tazas", *rec.ItemNameNew)
	assert.Equal(t, 6, *rec.QuantityCountNew)
	assert.Equal(t, "Alacena", *rec.CabinetNameNew)
}

func TestItemCreate_SinGabineteQuedaSinAsignar(t *testing.T) {
	s, uc := newItemFixture()

	resp, err := uc.Create(context.Background(), testHousehold, testUser, dto.CreateItemRequest{
		Name:     "Servilletas",
		Quantity: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, quantityAt(s, resp.ID, entity.Unassigned()))
	require.Len(t, resp.Stock, 1)
	assert.Empty(t, resp.Stock[0].CabinetID)
}

func TestItemCreate_CantidadCeroNoCreaFila(t *testing.T) {
	s, uc := newItemFixture()

	resp, err := uc.Create(context.Background(), testHousehold, testUser, dto.CreateItemRequest{
		Name: "Manteles",
	})
	require.NoError(t, err)
	assert.Empty(t, s.ledger[resp.ID], "cantidad 0 no genera fila de ledger")
	assert.Equal(t, 0, resp.Quantity)
}

func TestItemCreate_Validaciones(t *testing.T) {
	_, uc := newItemFixture()
	ctx := context.Background()

	_, err := uc.Create(ctx, testHousehold, testUser, dto.CreateItemRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = uc.Create(ctx, testHousehold, testUser, dto.CreateItemRequest{Name: "Vasos", Quantity: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Create(ctx, testHousehold, testUser, dto.CreateItemRequest{Name: "Vasos", MinStockAlert: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, testHousehold, testUser, dto.CreateItemRequest{Name: "Vasos", CabinetID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	_, err = uc.Create(ctx, testHousehold, testUser, dto.CreateItemRequest{Name: "Vasos", CategoryID: "fantasma"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestItemUpdate_RegistraSoloCamposCambiados(t *testing.T) {
	s, uc := newItemFixture()
	seedItem(s, testHousehold, testItemID, "Vasos", 2)

	name := "Copas"
	minStock := 4
	resp, err := uc.Update(context.Background(), testHousehold, testUser, testItemID, dto.UpdateItemRequest{
		Name:          &name,
		MinStockAlert: &minStock,
	})
	require.NoError(t, err)
	assert.Equal(t, "Copas", resp.Name)

	require.Len(t, s.records, 1)
	rec := s.records[0]
	assert.Equal(t, entity.OperateUpdate, rec.OperateType)
	assert.Equal(t, "Vasos", *rec.ItemNameOld)
	assert.Equal(t, "Copas", *rec.ItemNameNew)
	assert.Equal(t, 2, *rec.MinStockCountOld)
	assert.Equal(t, 4, *rec.MinStockCountNew)
	assert.Nil(t, rec.ItemDescriptionOld, "los campos no tocados van en nil")
}

func TestItemUpdate_SinCambiosNoEmiteDelta(t *testing.T) {
	s, uc := newItemFixture()
	seedItem(s, testHousehold, testItemID, "Vasos", 2)

	same := "Vasos"
	_, err := uc.Update(context.Background(), testHousehold, testUser, testItemID, dto.UpdateItemRequest{Name: &same})
	require.NoError(t, err)
	assert.Empty(t, s.records, "una actualización sin cambios reales no registra nada")
}

func TestItemDelete_EliminaSusFilasDeLedger(t *testing.T) {
	s, uc := newItemFixture()
	seedItem(s, testHousehold, testItemID, "Vasos", 0)
	seedLedger(s, testHousehold, testItemID, entity.AtCabinet(cabA), 3)
	seedLedger(s, testHousehold, testItemID, entity.Unassigned(), 1)

	err := uc.Delete(context.Background(), testHousehold, testUser, testItemID)
	require.NoError(t, err)

	assert.Empty(t, s.ledger[testItemID])
	assert.NotContains(t, s.items, testItemID)
	require.Len(t, s.records, 1)
	assert.Equal(t, entity.OperateDelete, s.records[0].OperateType)
	assert.Equal(t, "Vasos", *s.records[0].ItemNameOld)
}

func TestItem_AisladoPorHogar(t *testing.T) {
	s, uc := newItemFixture()
	seedItem(s, "otro-hogar", testItemID, "Ajeno", 0)

	_, err := uc.GetByID(testHousehold, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	err = uc.Delete(context.Background(), testHousehold, testUser, testItemID)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Contains(t, s.items, testItemID)
}
