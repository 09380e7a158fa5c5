package dto

// TransferLegRequest un tramo de traslado. FromCabinetID/ToCabinetID vacíos
// representan el pseudo-lugar "sin asignar". DeleteOnly retira stock del
// inventario (ignora el destino).
type TransferLegRequest struct {
	FromCabinetID string `json:"from_cabinet_id"`
	ToCabinetID   string `json:"to_cabinet_id"`
	Amount        int    `json:"amount"`
	DeleteOnly    bool   `json:"delete_only"`
}

// TransferRequest traslado por lotes: tramos ordenados del mismo artículo,
// aplicados secuencialmente y de forma atómica.
type TransferRequest struct {
	ItemID string               `json:"item_id"`
	Legs   []TransferLegRequest `json:"legs"`
}
