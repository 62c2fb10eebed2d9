// Package pdf exporta el listado de inventario a PDF con Maroto v2.
//
// Layout A4 apaisado, encabezado repetido en cada página:
//
//	┌──────────────────────────────────────────────────────────────┐
//	│  Título                                   Fecha · N productos │
//	│  Código | Nombre | Categoría | Precio | Stock | En_Espera     │
//	│  ...filas...                                                  │
//	└──────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/pkg/money"
)

var _ ports.Renderer = (*MarotoRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 47, Green: 85, Blue: 151}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorStripe  = &props.Color{Red: 240, Green: 243, Blue: 248}
	colorAlert   = &props.Color{Red: 192, Green: 0, Blue: 0}
)

// columnas sobre la grilla de 12 de Maroto, en el orden de dto.ExportHeaders.
var colSizes = []int{2, 4, 2, 2, 1, 1}

// ── Renderer ──────────────────────────────────────────────────────────────────

// MarotoRenderer implementa ports.Renderer para el formato pdf.
type MarotoRenderer struct {
	now func() time.Time
}

// NewMarotoRenderer construye el renderer.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{now: time.Now} }

func (g *MarotoRenderer) ContentType() string { return "application/pdf" }

func (g *MarotoRenderer) Extension() string { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoRenderer) Render(title string, rows []dto.ExportRow) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	if err := m.RegisterHeader(
		headerRow(title, g.now(), len(rows)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}),
		tableHeaderRow(),
	); err != nil {
		return nil, fmt.Errorf("pdf: registrar encabezado: %w", err)
	}
	m.AddRows(tableRows(rows)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de emisión + total de productos (der).
func headerRow(title string, at time.Time, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("%s productos", money.Integer(total)), props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla sobre fondo primario.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(dto.ExportHeaders))
	for i, label := range dto.ExportHeaders {
		cols = append(cols, col.New(colSizes[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: alignFor(i),
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableRows: una fila por producto, con filas alternas sombreadas y stock 0 en rojo.
func tableRows(rows []dto.ExportRow) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		values := []string{
			r.Code, r.Name, r.Category,
			money.Format(r.Price), strconv.Itoa(r.Stock), r.WaitingLabel(),
		}
		cols := make([]core.Col, 0, len(values))
		for c, v := range values {
			p := props.Text{Size: 8, Align: alignFor(c), Top: 1, Left: 1, Right: 1}
			if c == 4 && r.Stock == 0 {
				p.Color, p.Style = colorAlert, fontstyle.Bold
			}
			cols = append(cols, col.New(colSizes[c]).Add(text.New(v, p)))
		}
		rw := row.New(6).Add(cols...)
		if i%2 == 1 {
			rw.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, rw)
	}
	return result
}

func alignFor(column int) align.Type {
	switch column {
	case 3, 4:
		return align.Right
	case 5:
		return align.Center
	default:
		return align.Left
	}
}
