package dto

import "github.com/shopspring/decimal"

// ExportFormat formato de salida de la exportación (conjunto cerrado).
type ExportFormat string

const (
	FormatXLSX ExportFormat = "xlsx"
	FormatCSV  ExportFormat = "csv"
	FormatDOC  ExportFormat = "doc"
	FormatPDF  ExportFormat = "pdf"
)

// ExportRequest filtros de exportación.
type ExportRequest struct {
	Format      ExportFormat `query:"format" validate:"omitempty,oneof=xlsx csv doc pdf"`
	Category    string       `query:"category"`
	OnlyNoStock bool         `query:"only_no_stock"`
}

// ExportRow fila tabular producida por el core para los renderers.
type ExportRow struct {
	Code     string
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
	Waiting  bool
}

// ExportHeaders encabezados de columnas en el orden de ExportRow.
var ExportHeaders = []string{"Código", "Nombre", "Categoría", "Precio", "Stock", "En_Espera"}

// WaitingLabel representación de Waiting en las exportaciones.
func (r ExportRow) WaitingLabel() string {
	if r.Waiting {
		return "Sí"
	}
	return "No"
}

// ExportFile archivo generado.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
