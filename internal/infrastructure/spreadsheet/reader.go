// Package spreadsheet lee planillas de importación (xlsx, csv) y renderiza las
// exportaciones tabulares del inventario.
package spreadsheet

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

var _ ports.SpreadsheetReader = Reader{}

// Reader elige el formato por la extensión del archivo.
type Reader struct{}

// NewReader construye el lector.
func NewReader() Reader { return Reader{} }

func (Reader) ReadRows(filename string, r io.Reader) ([]dto.ImportRow, error) {
	var (
		table [][]string
		err   error
	)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		table, err = readXLSX(r)
	case ".csv", ".txt":
		table, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: formato de archivo %q no soportado (xlsx o csv)", domain.ErrInvalidInput, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return toRows(table), nil
}

// toRows usa la primera fila como encabezado. Columnas sin encabezado se ignoran. Las
// filas vacías se conservan para que el índice siga la numeración de la planilla.
func toRows(table [][]string) []dto.ImportRow {
	if len(table) == 0 {
		return []dto.ImportRow{}
	}
	header := make([]string, len(table[0]))
	for i, h := range table[0] {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
	}

	rows := make([]dto.ImportRow, 0, len(table)-1)
	for _, rec := range table[1:] {
		row := dto.ImportRow{}
		for i, v := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			if _, dup := row[header[i]]; dup {
				continue
			}
			row[header[i]] = strings.TrimSpace(v)
		}
		rows = append(rows, row)
	}
	return rows
}
