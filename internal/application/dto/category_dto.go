package dto

// CreateCategoryRequest alta de una categoría. ParentID vacío crea una raíz.
type CreateCategoryRequest struct {
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
}

// UpdateCategoryRequest renombra y/o reubica una categoría.
// ParentID en nil no toca el padre; "" la convierte en raíz; otro valor la
// cuelga de ese padre.
type UpdateCategoryRequest struct {
	Name     *string `json:"name"`
	ParentID *string `json:"parent_id"`
}

// CategoryResponse representación de salida de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id,omitempty"`
	Level    int    `json:"level"`
}
