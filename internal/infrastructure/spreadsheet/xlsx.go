package spreadsheet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

const xlsxSheet = "Inventario"

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("el libro no tiene hojas")
	}
	// Valores crudos: con formato, 1234.5 llegaría como "1,234.50".
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", sheet, err)
	}
	return rows, nil
}

// XLSXRenderer exporta a una hoja "Inventario" con encabezado estilizado y autofiltro.
type XLSXRenderer struct{}

func (XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXRenderer) Extension() string { return "xlsx" }

func (XLSXRenderer) Render(title string, rows []dto.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", xlsxSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	_ = f.SetDocProps(&excelize.DocProperties{Title: title, Creator: title})

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2F5597"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	priceStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo precio: %w", err)
	}

	widths := make([]float64, len(dto.ExportHeaders))
	track := func(col int, s string) {
		if w := float64(len([]rune(s))); w > widths[col] {
			widths[col] = w
		}
	}
	for i, h := range dto.ExportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(xlsxSheet, cell, h)
		track(i, h)
	}

	for i, r := range rows {
		line := i + 2
		price, _ := r.Price.Float64()
		values := []any{r.Code, r.Name, r.Category, price, r.Stock, r.WaitingLabel()}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, line)
			if err := f.SetCellValue(xlsxSheet, cell, v); err != nil {
				return nil, fmt.Errorf("xlsx: escribir %s: %w", cell, err)
			}
			track(c, fmt.Sprint(v))
		}
	}

	last, _ := excelize.ColumnNumberToName(len(dto.ExportHeaders))
	_ = f.SetCellStyle(xlsxSheet, "A1", last+"1", headerStyle)
	if len(rows) > 0 {
		_ = f.SetCellStyle(xlsxSheet, "D2", fmt.Sprintf("D%d", len(rows)+1), priceStyle)
	}
	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := w*1.2 + 2
		if width < 8 {
			width = 8
		}
		_ = f.SetColWidth(xlsxSheet, col, col, width)
	}
	_ = f.AutoFilter(xlsxSheet, fmt.Sprintf("A1:%s%d", last, len(rows)+1), nil)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}
