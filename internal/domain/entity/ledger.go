package entity

import "time"

// LocationRef identifica dónde está el stock de un artículo: un gabinete
// concreto o el pseudo-lugar "sin asignar". Se modela como tipo etiquetado
// (no como string mágico) para que sea comparable y usable como clave.
type LocationRef struct {
	CabinetID string
	Assigned  bool
}

// Unassigned devuelve la referencia al pseudo-lugar "sin asignar".
func Unassigned() LocationRef {
	return LocationRef{}
}

// AtCabinet devuelve la referencia a un gabinete concreto.
func AtCabinet(cabinetID string) LocationRef {
	return LocationRef{CabinetID: cabinetID, Assigned: true}
}

// IsUnassigned indica si la referencia es el pseudo-lugar "sin asignar".
func (l LocationRef) IsUnassigned() bool {
	return !l.Assigned
}

// LedgerEntry es una fila del ledger: cantidad de un artículo en una ubicación.
// Invariantes: única por (ItemID, Location); Quantity nunca negativa; la suma
// de las filas de un artículo es su stock total; una fila con cantidad 0 se
// elimina en lugar de retenerse.
type LedgerEntry struct {
	ID          string
	HouseholdID string
	ItemID      string
	Location    LocationRef
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
