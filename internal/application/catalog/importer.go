package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// Alias de encabezados aceptados por columna; se usa el primero con valor.
var (
	colCode        = []string{"Código", "Codigo", "Code", "codigo"}
	colName        = []string{"Nombre", "name", "Name"}
	colCategory    = []string{"Categoría", "Categoria", "category"}
	colPrice       = []string{"Precio", "Price"}
	colStock       = []string{"Stock", "Cantidad", "quantity"}
	colWaiting     = []string{"En_Espera", "En espera", "waiting"}
	colImage       = []string{"Imagen", "image"}
	colDescription = []string{"Descripción", "Descripcion", "description"}
)

// Importer inserta productos desde filas de planilla, opcionalmente omitiendo códigos repetidos.
type Importer struct {
	products        repository.ProductRepository
	defaultCategory string
	log             *logger.Logger
}

// NewImporter construye el importador. defaultCategory se asigna a filas sin categoría.
func NewImporter(products repository.ProductRepository, defaultCategory string, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	if defaultCategory == "" {
		defaultCategory = "General"
	}
	return &Importer{products: products, defaultCategory: defaultCategory, log: log.Component("importer")}
}

// ImportRows procesa rows en orden. Cada fila termina inserted, skipped o failed.
// Sin ContinueOnError el primer fallo detiene la importación: el resultado parcial se
// devuelve junto con el error y las filas siguientes no se intentan.
func (im *Importer) ImportRows(ctx context.Context, rows []dto.ImportRow, opts dto.ImportOptions) (*dto.ImportResult, error) {
	result := &dto.ImportResult{Outcomes: make([]dto.RowOutcome, 0, len(rows))}

	var seen map[string]struct{}
	if opts.SkipDuplicatesByCode {
		existing, err := im.products.List(ctx)
		if err != nil {
			return result, domain.Upstream("document store", err)
		}
		seen = make(map[string]struct{}, len(existing)+len(rows))
		for _, p := range existing {
			if p.Code != "" {
				seen[p.Code] = struct{}{}
			}
		}
	}

	for i, row := range rows {
		if blankRow(row) {
			continue
		}
		outcome := dto.RowOutcome{Row: i + 2}
		product, err := im.productFromRow(row)
		if product != nil {
			outcome.Code = product.Code
		}
		if err == nil && seen != nil && product.Code != "" {
			if _, dup := seen[product.Code]; dup {
				outcome.Status = dto.RowSkipped
				result.Skipped++
				result.Outcomes = append(result.Outcomes, outcome)
				continue
			}
		}
		if err == nil {
			if cerr := im.products.Create(ctx, product); cerr != nil {
				err = domain.Upstream("document store", cerr)
			}
		}

		if err != nil {
			outcome.Status = dto.RowFailed
			outcome.Error = err.Error()
			result.Failed++
			result.Outcomes = append(result.Outcomes, outcome)
			im.log.Warn().Err(err).Int("row", outcome.Row).Str("code", outcome.Code).Msg("fila no importada")
			if !opts.ContinueOnError {
				result.Aborted = true
				return result, fmt.Errorf("importar fila %d: %w", outcome.Row, err)
			}
			continue
		}

		if seen != nil && product.Code != "" {
			seen[product.Code] = struct{}{}
		}
		outcome.Status = dto.RowInserted
		outcome.ProductID = product.ID
		result.Inserted++
		result.Outcomes = append(result.Outcomes, outcome)
	}

	im.log.Info().Int("inserted", result.Inserted).Int("skipped", result.Skipped).
		Int("failed", result.Failed).Msg("importación terminada")
	return result, nil
}

// productFromRow aplica los alias y valores por defecto. Precio y stock ausentes valen 0;
// los ilegibles o negativos se rechazan.
func (im *Importer) productFromRow(row dto.ImportRow) (*entity.Product, error) {
	p := &entity.Product{
		Code:        pick(row, colCode),
		Name:        pick(row, colName),
		Category:    pick(row, colCategory),
		Image:       pick(row, colImage),
		Description: pick(row, colDescription),
		Waiting:     strings.HasPrefix(strings.ToLower(pick(row, colWaiting)), "s"),
	}
	if p.Category == "" {
		p.Category = im.defaultCategory
	}

	price, err := parseDecimal(pick(row, colPrice))
	if err != nil {
		return p, fmt.Errorf("%w: precio %q ilegible", domain.ErrInvalidInput, pick(row, colPrice))
	}
	if price.IsNegative() {
		return p, fmt.Errorf("%w: precio negativo", domain.ErrInvalidInput)
	}
	p.Price = price

	stock, err := parseDecimal(pick(row, colStock))
	if err != nil {
		return p, fmt.Errorf("%w: stock %q ilegible", domain.ErrInvalidInput, pick(row, colStock))
	}
	if stock.IsNegative() {
		return p, fmt.Errorf("%w: stock negativo", domain.ErrInvalidInput)
	}
	p.Quantity = int(stock.IntPart())
	return p, nil
}

func pick(row dto.ImportRow, aliases []string) string {
	for _, a := range aliases {
		if v := strings.TrimSpace(row[a]); v != "" {
			return v
		}
	}
	return ""
}

// blankRow indica una fila sin ningún valor; la planilla la conserva para numerar las siguientes.
func blankRow(row dto.ImportRow) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseDecimal acepta "10", "10.5", "10,5", "$ 1200", "1.200,50" y "1,200.50".
// Con ambos separadores el último es el decimal; un separador repetido es de miles.
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.NewReplacer(" ", "", "\u00a0", "").Replace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	dot, comma := strings.LastIndex(s, "."), strings.LastIndex(s, ",")
	switch {
	case dot >= 0 && comma >= 0 && comma > dot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case dot >= 0 && comma >= 0:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0 && strings.Count(s, ",") > 1:
		s = strings.ReplaceAll(s, ",", "")
	case comma >= 0:
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		s = strings.ReplaceAll(s, ".", "")
	}
	return decimal.NewFromString(s)
}
