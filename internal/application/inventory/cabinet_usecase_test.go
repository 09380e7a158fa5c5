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

func newCabinetFixture() (*memStore, *inventory.CabinetUseCase) {
	s := newMemStore()
	return s, inventory.NewCabinetUseCase(&memTxRunner{s}, &memCabinetRepo{s})
}

func TestCabinetCreate_EmiteDelta(t *testing.T) {
	s, uc := newCabinetFixture()

	resp, err := uc.Create(context.Background(), testHousehold, testUser, dto.CreateCabinetRequest{Name: "Alacena"})
	require.NoError(t, err)
	assert.Equal(t, "Alacena", resp.Name)

	require.Len(t, s.records, 1)
	assert.Equal(t, entity.OperateCreate, s.records[0].OperateType)
	assert.Equal(t, entity.EntityCabinet, s.records[0].EntityType)
	assert.Equal(t, "Alacena", *s.records[0].CabinetNameNew)
}

func TestCabinetCreate_NombreVacio(t *testing.T) {
	_, uc := newCabinetFixture()
	_, err := uc.Create(context.Background(), testHousehold, testUser, dto.CreateCabinetRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidName)
}

func TestCabinetUpdate_Renombra(t *testing.T) {
	s, uc := newCabinetFixture()
	seedCabinet(s, testHousehold, cabA, "Alacena")

	name := "Despensa"
	resp, err := uc.Update(context.Background(), testHousehold, testUser, cabA, dto.UpdateCabinetRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Despensa", resp.Name)

	require.Len(t, s.records, 1)
	assert.Equal(t, "Alacena", *s.records[0].CabinetNameOld)
	assert.Equal(t, "Despensa", *s.records[0].CabinetNameNew)
}

func TestCabinetDelete_PliegaStockASinAsignar(t *testing.T) {
	s, uc := newCabinetFixture()
	seedCabinet(s, testHousehold, cabA, "Alacena")
	seedItem(s, testHousehold, testItemID, "Vasos", 0)
	otherItem := "10000000-0000-0000-0000-000000000002"
	seedItem(s, testHousehold, otherItem, "Platos", 0)
	seedLedger(s, testHousehold, testItemID, entity.AtCabinet(cabA), 3)
	seedLedger(s, testHousehold, testItemID, entity.Unassigned(), 2)
	seedLedger(s, testHousehold, otherItem, entity.AtCabinet(cabA), 7)

	err := uc.Delete(context.Background(), testHousehold, testUser, cabA)
	require.NoError(t, err)

	assert.NotContains(t, s.cabinets, cabA)
	assert.False(t, hasRow(s, testItemID, entity.AtCabinet(cabA)))
	assert.Equal(t, 5, quantityAt(s, testItemID, entity.Unassigned()),
		"el stock del gabinete se fusiona con la porción sin asignar existente")
	assert.Equal(t, 7, quantityAt(s, otherItem, entity.Unassigned()))
	assert.Equal(t, 5, totalOf(s, testItemID), "eliminar un gabinete no cambia los totales")
	assert.Equal(t, 7, totalOf(s, otherItem))
}

func TestCabinetDelete_Inexistente(t *testing.T) {
	_, uc := newCabinetFixture()
	err := uc.Delete(context.Background(), testHousehold, testUser, "fantasma")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}
