package entity

import "time"

// Tipos de operación registrados en el historial de cambios.
const (
	OperateCreate = 0
	OperateUpdate = 1
	OperateDelete = 2
)

// Tipos de entidad sobre los que se registra un cambio.
const (
	EntityCabinet  = 0
	EntityItem     = 1
	EntityCategory = 2
)

// Tipos de registro: normal o advertencia (ej. stock bajo el mínimo).
const (
	RecordNormal  = 0
	RecordWarning = 1
)

// Record es el delta estructurado antes/después que los motores emiten al
// registrador de cambios. Los campos *Old/*New van en nil cuando el campo
// no cambió en la operación.
type Record struct {
	ID          string
	HouseholdID string
	UserName    string
	OperateType int
	EntityType  int
	RecordType  int

	ItemNameOld        *string
	ItemNameNew        *string
	ItemDescriptionOld *string
	ItemDescriptionNew *string
	ItemPhotoOld       *string
	ItemPhotoNew       *string
	CategoryNameOld    *string
	CategoryNameNew    *string
	RoomNameOld        *string
	RoomNameNew        *string
	CabinetNameOld     *string
	CabinetNameNew     *string
	QuantityCountOld   *int
	QuantityCountNew   *int
	MinStockCountOld   *int
	MinStockCountNew   *int

	Description string
	CreatedAt   time.Time
}
