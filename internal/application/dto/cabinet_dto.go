package dto

// CreateCabinetRequest alta de un gabinete.
type CreateCabinetRequest struct {
	Name   string `json:"name"`
	RoomID string `json:"room_id"`
}

// UpdateCabinetRequest actualización parcial de un gabinete.
type UpdateCabinetRequest struct {
	Name   *string `json:"name"`
	RoomID *string `json:"room_id"`
}

// CabinetResponse representación de salida de un gabinete.
type CabinetResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	RoomID string `json:"room_id,omitempty"`
}
