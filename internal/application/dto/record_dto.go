package dto

// ListRecordsRequest filtros para el historial de cambios. Las fechas son
// epoch en milisegundos.
type ListRecordsRequest struct {
	ID          string `query:"id"`
	OperateType *int   `query:"operate_type"`
	EntityType  *int   `query:"entity_type"`
	StartDate   *int64 `query:"start_date"`
	EndDate     *int64 `query:"end_date"`
}

// RecordResponse un delta del historial de cambios.
type RecordResponse struct {
	ID          string `json:"id"`
	UserName    string `json:"user_name"`
	OperateType int    `json:"operate_type"`
	EntityType  int    `json:"entity_type"`
	RecordType  int    `json:"record_type"`

	ItemNameOld        *string `json:"item_name_old,omitempty"`
	ItemNameNew        *string `json:"item_name_new,omitempty"`
	ItemDescriptionOld *string `json:"item_description_old,omitempty"`
	ItemDescriptionNew *string `json:"item_description_new,omitempty"`
	ItemPhotoOld       *string `json:"item_photo_old,omitempty"`
	ItemPhotoNew       *string `json:"item_photo_new,omitempty"`
	CategoryNameOld    *string `json:"category_name_old,omitempty"`
	CategoryNameNew    *string `json:"category_name_new,omitempty"`
	RoomNameOld        *string `json:"room_name_old,omitempty"`
	RoomNameNew        *string `json:"room_name_new,omitempty"`
	CabinetNameOld     *string `json:"cabinet_name_old,omitempty"`
	CabinetNameNew     *string `json:"cabinet_name_new,omitempty"`
	QuantityCountOld   *int    `json:"quantity_count_old,omitempty"`
	QuantityCountNew   *int    `json:"quantity_count_new,omitempty"`
	MinStockCountOld   *int    `json:"min_stock_count_old,omitempty"`
	MinStockCountNew   *int    `json:"min_stock_count_new,omitempty"`

	Description string `json:"description,omitempty"`
	CreatedAt   int64  `json:"created_at"`
}
