package entity

import "time"

// Cabinet representa un gabinete o mueble de almacenamiento dentro del hogar.
// RoomID referencia una habitación administrada por un servicio externo.
type Cabinet struct {
	ID          string
	HouseholdID string
	RoomID      string // vacío si no está asociado a una habitación
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
