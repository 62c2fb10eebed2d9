package repository

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// CategoryStore persiste la lista completa de categorías (sin parches incrementales).
// Load devuelve una lista vacía si nunca se guardó.
type CategoryStore interface {
	Load(ctx context.Context) (entity.CategoryList, error)
	Save(ctx context.Context, categories entity.CategoryList) error
}
