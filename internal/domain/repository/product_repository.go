package repository

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product sobre el document store.
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	// Create inserta el producto; el store asigna ID y CreatedAt y los escribe en product.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// Update reemplaza los campos editables (no ID ni CreatedAt).
	Update(ctx context.Context, product *entity.Product) error
	Patch(ctx context.Context, id string, patch entity.ProductPatch) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	// ListByCategory consulta por coincidencia exacta de category.
	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)
	CountByCategory(ctx context.Context, category string) (int, error)
}
