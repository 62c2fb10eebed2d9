package dto

// ImportRow fila de una planilla: encabezado de columna → valor de celda.
type ImportRow map[string]string

// ImportOptions opciones de importación.
type ImportOptions struct {
	// SkipDuplicatesByCode omite filas cuyo código ya existe en el store o en el mismo archivo.
	SkipDuplicatesByCode bool `query:"skip_duplicates"`
	// ContinueOnError procesa las filas restantes cuando una falla; por defecto se aborta.
	ContinueOnError bool `query:"continue_on_error"`
}

// DefaultImportOptions omite duplicados por código y aborta ante el primer error.
func DefaultImportOptions() ImportOptions {
	return ImportOptions{SkipDuplicatesByCode: true}
}

// Estados de una fila importada.
const (
	RowInserted = "inserted"
	RowSkipped  = "skipped"
	RowFailed   = "failed"
)

// RowOutcome resultado de una fila. Row es el número de fila en la planilla (la 1 es el encabezado).
type RowOutcome struct {
	Row       int    `json:"row"`
	Code      string `json:"code,omitempty"`
	Status    string `json:"status"`
	ProductID string `json:"product_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ImportResult resumen de la importación.
type ImportResult struct {
	Inserted int          `json:"inserted"`
	Skipped  int          `json:"skipped"`
	Failed   int          `json:"failed"`
	Aborted  bool         `json:"aborted"`
	Outcomes []RowOutcome `json:"outcomes"`
}
