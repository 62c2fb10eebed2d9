package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// ImportUseCase lee una planilla y la importa con el Importer del catálogo.
type ImportUseCase struct {
	reader   ports.SpreadsheetReader
	importer *catalog.Importer
}

// NewImportUseCase construye el caso de uso.
func NewImportUseCase(reader ports.SpreadsheetReader, importer *catalog.Importer) *ImportUseCase {
	return &ImportUseCase{reader: reader, importer: importer}
}

// ImportFile importa el archivo filename. Si la importación se aborta devuelve el resultado
// parcial junto con el error.
func (uc *ImportUseCase) ImportFile(ctx context.Context, filename string, r io.Reader, opts dto.ImportOptions) (*dto.ImportResult, error) {
	rows, err := uc.reader.ReadRows(filename, r)
	if err != nil {
		return nil, fmt.Errorf("%w: planilla ilegible: %v", domain.ErrInvalidInput, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: la planilla no tiene filas", domain.ErrInvalidInput)
	}
	return uc.importer.ImportRows(ctx, rows, opts)
}
