package spreadsheet

import (
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
)

// Renderers devuelve los renderers tabulares de este paquete; doc y pdf los aporta el llamador.
func Renderers(extra map[dto.ExportFormat]ports.Renderer) map[dto.ExportFormat]ports.Renderer {
	out := map[dto.ExportFormat]ports.Renderer{
		dto.FormatXLSX: XLSXRenderer{},
		dto.FormatCSV:  CSVRenderer{},
	}
	for f, r := range extra {
		out[f] = r
	}
	return out
}
