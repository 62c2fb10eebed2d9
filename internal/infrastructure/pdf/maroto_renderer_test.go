package pdf

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

func TestMarotoRenderer_Render(t *testing.T) {
	rows := make([]dto.ExportRow, 0, 80)
	for i := 0; i < 80; i++ {
		rows = append(rows, dto.ExportRow{
			Code: "C", Name: "Producto", Category: "Limpieza",
			Price: decimal.NewFromInt(int64(i * 100)), Stock: i % 3,
		})
	}

	out, err := NewMarotoRenderer().Render("Inventario - LimpiArte", rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestMarotoRenderer_Metadata(t *testing.T) {
	r := NewMarotoRenderer()
	assert.Equal(t, "application/pdf", r.ContentType())
	assert.Equal(t, "pdf", r.Extension())
}

func TestColumnGrid(t *testing.T) {
	assert.Equal(t, len(dto.ExportHeaders), len(colSizes))
	sum := 0
	for _, s := range colSizes {
		sum += s
	}
	assert.Equal(t, 12, sum)
}
