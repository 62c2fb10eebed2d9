package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

func exportRows() []dto.ExportRow {
	return []dto.ExportRow{
		{Code: "X1", Name: "Trapo", Category: "Limpieza", Price: decimal.RequireFromString("1234.5"), Stock: 3, Waiting: true},
		{Code: "B2", Name: "Balde, grande", Category: "Hogar", Price: decimal.NewFromInt(10), Stock: 0},
	}
}

func TestReadRows_CSVUTF8(t *testing.T) {
	in := "\ufeffCódigo,Nombre,Categoría,Precio\nX1,Trapo,Limpieza,10\n,,,\n  B2 , Balde ,,\n"
	rows, err := NewReader().ReadRows("catalogo.CSV", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3, "la fila vacía se conserva para numerar las siguientes")
	assert.Equal(t, dto.ImportRow{"Código": "X1", "Nombre": "Trapo", "Categoría": "Limpieza", "Precio": "10"}, rows[0])
	assert.Equal(t, dto.ImportRow{"Código": "", "Nombre": "", "Categoría": "", "Precio": ""}, rows[1])
	assert.Equal(t, "B2", rows[2]["Código"])
	assert.Equal(t, "Balde", rows[2]["Nombre"])
}

func TestReadRows_CSVEmptyLinesKeepNumbering(t *testing.T) {
	in := "Código,Nombre\nX1,Trapo\n\n\nB2,Balde\n"
	rows, err := NewReader().ReadRows("catalogo.csv", strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Empty(t, rows[1])
	assert.Empty(t, rows[2])
	assert.Equal(t, "B2", rows[3]["Código"], "B2 está en la línea 5 del archivo")
}

func TestReadRows_CSVWindows1252Semicolon(t *testing.T) {
	utf := "Código;Nombre;Categoría\nA1;Paño micro;Baños\n"
	raw, err := charmap.Windows1252.NewEncoder().String(utf)
	require.NoError(t, err)

	rows, err := NewReader().ReadRows("export.csv", strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Paño micro", rows[0]["Nombre"])
	assert.Equal(t, "Baños", rows[0]["Categoría"])
}

func TestReadRows_UnsupportedExtension(t *testing.T) {
	_, err := NewReader().ReadRows("catalogo.ods", strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadRows_CorruptXLSX(t *testing.T) {
	_, err := NewReader().ReadRows("catalogo.xlsx", strings.NewReader("no es un zip"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestXLSX_ExportCanBeReimported(t *testing.T) {
	data, err := XLSXRenderer{}.Render("Inventario", exportRows())
	require.NoError(t, err)

	rows, err := NewReader().ReadRows("Inventario_2024-03-01.xlsx", bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "X1", rows[0]["Código"])
	assert.Equal(t, "1234.5", rows[0]["Precio"])
	assert.Equal(t, "3", rows[0]["Stock"])
	assert.Equal(t, "Sí", rows[0]["En_Espera"])
	assert.Equal(t, "No", rows[1]["En_Espera"])
}

func TestCSVRenderer(t *testing.T) {
	data, err := CSVRenderer{}.Render("Inventario", exportRows())
	require.NoError(t, err)
	s := string(data)
	assert.True(t, strings.HasPrefix(s, "\ufeff"))
	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(s, "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Código,Nombre,Categoría,Precio,Stock,En_Espera", lines[0])
	assert.Equal(t, "X1,Trapo,Limpieza,1234.50,3,Sí", lines[1])
	assert.Equal(t, `B2,"Balde, grande",Hogar,10.00,0,No`, lines[2])

	back, err := NewReader().ReadRows("x.csv", bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "Balde, grande", back[1]["Nombre"])
}

func TestRenderers(t *testing.T) {
	r := Renderers(nil)
	assert.Contains(t, r, dto.FormatXLSX)
	assert.Contains(t, r, dto.FormatCSV)
}
