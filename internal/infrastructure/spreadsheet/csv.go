package spreadsheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

const utf8BOM = "\ufeff"

// readCSV acepta UTF-8 (con o sin BOM) y Windows-1252, el encoding que usa Excel en
// Windows al guardar "CSV". El separador es ";" si la primera línea lo contiene.
func readCSV(r io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer csv: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte(utf8BOM))
	if !utf8.Valid(raw) {
		raw, err = charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decodificar windows-1252: %w", err)
		}
	}

	first, _, _ := bufio.NewReader(bytes.NewReader(raw)).ReadLine()
	cr := csv.NewReader(bytes.NewReader(raw))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if bytes.Count(first, []byte(";")) > bytes.Count(first, []byte(",")) {
		cr.Comma = ';'
	}
	// csv.Reader saltea las líneas vacías; se rellenan para conservar la numeración.
	var table [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, fmt.Errorf("parsear csv: %w", err)
		}
		line, _ := cr.FieldPos(0)
		for len(table) < line-1 {
			table = append(table, nil)
		}
		table = append(table, rec)
	}
}

// CSVRenderer exporta en UTF-8 con BOM para que Excel detecte el encoding.
type CSVRenderer struct{}

func (CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

func (CSVRenderer) Extension() string { return "csv" }

func (CSVRenderer) Render(_ string, rows []dto.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(&buf)
	if err := w.Write(dto.ExportHeaders); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	for _, r := range rows {
		rec := []string{r.Code, r.Name, r.Category, r.Price.StringFixed(2), strconv.Itoa(r.Stock), r.WaitingLabel()}
		if err := w.Write(rec); err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}
