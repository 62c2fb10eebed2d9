package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// ExportUseCase genera el inventario en uno de los formatos registrados.
type ExportUseCase struct {
	repo      repository.ProductRepository
	renderers map[dto.ExportFormat]ports.Renderer
	title     string
	now       func() time.Time
}

// NewExportUseCase construye el caso de uso con un renderer por formato.
func NewExportUseCase(repo repository.ProductRepository, renderers map[dto.ExportFormat]ports.Renderer, title string) *ExportUseCase {
	return &ExportUseCase{repo: repo, renderers: renderers, title: title, now: time.Now}
}

// Export filtra los productos y los entrega al renderer del formato pedido (xlsx por defecto).
func (uc *ExportUseCase) Export(ctx context.Context, req dto.ExportRequest) (*dto.ExportFile, error) {
	format := req.Format
	if format == "" {
		format = dto.FormatXLSX
	}
	renderer, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q no soportado", domain.ErrInvalidInput, format)
	}

	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.Upstream("document store", err)
	}
	rows := make([]dto.ExportRow, 0, len(products))
	for _, p := range products {
		if req.Category != "" && p.Category != req.Category {
			continue
		}
		if req.OnlyNoStock && p.Quantity != 0 {
			continue
		}
		rows = append(rows, dto.ExportRow{
			Code:     p.Code,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Stock:    p.Quantity,
			Waiting:  p.Waiting,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no hay productos para exportar", domain.ErrInvalidInput)
	}

	data, err := renderer.Render(uc.title, rows)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", format, err)
	}
	return &dto.ExportFile{
		Filename:    fmt.Sprintf("Inventario_%s.%s", uc.now().Format("2006-01-02"), renderer.Extension()),
		ContentType: renderer.ContentType(),
		Data:        data,
	}, nil
}
