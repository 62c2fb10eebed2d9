package catalog

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// StockAdjuster suma o resta una unidad de stock con lectura-modificación-escritura.
// Sin token de concurrencia: dos ajustes simultáneos sobre el mismo producto pueden perder uno.
type StockAdjuster struct {
	products repository.ProductRepository
}

// NewStockAdjuster construye el ajustador.
func NewStockAdjuster(products repository.ProductRepository) *StockAdjuster {
	return &StockAdjuster{products: products}
}

// Increment suma 1 y devuelve la nueva cantidad.
func (s *StockAdjuster) Increment(ctx context.Context, id string) (int, error) {
	return s.adjust(ctx, id, 1)
}

// Decrement resta 1 sin bajar de 0 y devuelve la nueva cantidad.
func (s *StockAdjuster) Decrement(ctx context.Context, id string) (int, error) {
	return s.adjust(ctx, id, -1)
}

func (s *StockAdjuster) adjust(ctx context.Context, id string, delta int) (int, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return 0, domain.Upstream("document store", err)
	}
	if p == nil {
		return 0, domain.ErrNotFound
	}
	qty := p.Quantity + delta
	if qty < 0 {
		qty = 0
	}
	if qty == p.Quantity {
		return qty, nil
	}
	if err := s.products.Patch(ctx, id, entity.ProductPatch{Quantity: &qty}); err != nil {
		return p.Quantity, domain.Upstream("document store", err)
	}
	return qty, nil
}
