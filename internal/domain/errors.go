package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")

	// Ledger de cantidades / motor de traslados.
	ErrInvalidQuantity      = errors.New("cantidad inválida")
	ErrInsufficientQuantity = errors.New("cantidad insuficiente en el origen")
	ErrInvalidTransfer      = errors.New("origen y destino del traslado no pueden ser iguales")
	ErrItemNotFound         = errors.New("artículo no encontrado")
	ErrLocationNotFound     = errors.New("gabinete no encontrado")

	// Motor de jerarquía de categorías.
	ErrCategoryNotFound = errors.New("categoría no encontrada")
	ErrDuplicateName    = errors.New("ya existe una categoría con ese nombre bajo el mismo padre")
	ErrLevelExceeded    = errors.New("se excede el máximo de niveles de la jerarquía")
	ErrCycleDetected    = errors.New("el nuevo padre crearía un ciclo en la jerarquía")
	ErrInvalidName      = errors.New("nombre vacío o inválido")
)
