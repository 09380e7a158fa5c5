package dto

// CreateItemRequest alta de un artículo. CabinetID vacío deja el stock
// inicial "sin asignar".
type CreateItemRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	CategoryID    string `json:"category_id"`
	CabinetID     string `json:"cabinet_id"`
	Quantity      int    `json:"quantity"`
	MinStockAlert int    `json:"min_stock_alert"`
	Photo         string `json:"photo"`
}

// UpdateItemRequest actualización parcial de atributos normales del artículo.
// Los campos en nil no se tocan; CategoryID/Photo con "" limpian la referencia.
// La cantidad y la ubicación se mueven con el motor de traslados, no aquí.
type UpdateItemRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	CategoryID    *string `json:"category_id"`
	MinStockAlert *int    `json:"min_stock_alert"`
	Photo         *string `json:"photo"`
}

// StockSlotResponse desglose de stock de un artículo en una ubicación.
// CabinetID vacío representa el pseudo-lugar "sin asignar".
type StockSlotResponse struct {
	CabinetID   string `json:"cabinet_id,omitempty"`
	CabinetName string `json:"cabinet_name,omitempty"`
	Quantity    int    `json:"quantity"`
}

// ItemResponse representación de salida de un artículo con su stock.
type ItemResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description,omitempty"`
	Category      *CategoryResponse   `json:"category,omitempty"`
	MinStockAlert int                 `json:"min_stock_alert"`
	Photo         string              `json:"photo,omitempty"`
	Quantity      int                 `json:"quantity"`
	Stock         []StockSlotResponse `json:"stock"`
}

// ListItemsRequest filtros de listado de artículos.
type ListItemsRequest struct {
	CabinetID   string   `query:"cabinet_id"`
	CategoryIDs []string `query:"category_ids"`
}
