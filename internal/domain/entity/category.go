package entity

import "time"

// Category representa una categoría jerárquica de artículos.
// Invariantes: ParentID vacío <=> Level == 1; con padre, Level = padre.Level + 1
// y nunca supera el máximo configurado (3 por defecto).
type Category struct {
	ID          string
	HouseholdID string
	ParentID    string // vacío si es raíz
	Name        string
	Level       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool {
	return c.ParentID == ""
}
