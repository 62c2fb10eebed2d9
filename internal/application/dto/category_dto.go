package dto

// AddCategoryRequest entrada para crear una categoría.
type AddCategoryRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// RenameCategoryRequest entrada para renombrar. Cascade migra los productos que usan el nombre anterior.
type RenameCategoryRequest struct {
	NewName string `json:"new_name" validate:"max=100"`
	Cascade bool   `json:"cascade"`
}

// CategoryResponse categoría con su contador de productos.
type CategoryResponse struct {
	Name         string `json:"name"`
	ProductCount int    `json:"product_count"`
	CountLevel   string `json:"count_level"`
}

// CategoryListResponse lista de categorías (orden del registro u ordenada para selects).
type CategoryListResponse struct {
	Items  []CategoryResponse `json:"items"`
	Sorted bool               `json:"sorted"`
}

// CategoryImpactResponse productos afectados por renombrar o eliminar una categoría.
type CategoryImpactResponse struct {
	Name             string `json:"name"`
	AffectedProducts int    `json:"affected_products"`
}

// RenameCategoryResponse resultado de un renombrado.
type RenameCategoryResponse struct {
	OldName  string `json:"old_name"`
	NewName  string `json:"new_name"`
	Migrated int    `json:"migrated"`
	Error    string `json:"error,omitempty"` // migración parcial: el registro no se modificó
}

// RemoveCategoryResponse resultado de una eliminación; los productos quedan huérfanos.
type RemoveCategoryResponse struct {
	Name             string `json:"name"`
	OrphanedProducts int    `json:"orphaned_products"`
}
