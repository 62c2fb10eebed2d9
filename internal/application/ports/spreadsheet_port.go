package ports

import (
	"io"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

// Renderer convierte filas de exportación a un formato de archivo.
type Renderer interface {
	Render(title string, rows []dto.ExportRow) ([]byte, error)
	ContentType() string
	Extension() string
}

// SpreadsheetReader lee las filas de una planilla; filename determina el formato.
// Las filas completamente vacías se omiten.
type SpreadsheetReader interface {
	ReadRows(filename string, r io.Reader) ([]dto.ImportRow, error)
}
