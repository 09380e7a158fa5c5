package entity

import "time"

// Item representa un artículo del hogar. No guarda cantidad ni ubicación:
// eso vive en el ledger (LedgerEntry) como filas por gabinete.
type Item struct {
	ID            string
	HouseholdID   string
	CategoryID    string // vacío si no tiene categoría
	Name          string
	Description   string
	MinStockAlert int    // umbral de alerta de stock mínimo (>= 0)
	Photo         string // referencia a la foto subida (vacío si no hay)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
