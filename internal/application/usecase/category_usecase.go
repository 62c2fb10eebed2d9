package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// CategoryUseCase expone el registro de categorías con contadores para el panel.
type CategoryUseCase struct {
	registry   *catalog.CategoryRegistry
	reconciler *catalog.Reconciler
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(registry *catalog.CategoryRegistry, reconciler *catalog.Reconciler, log *logger.Logger) *CategoryUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryUseCase{registry: registry, reconciler: reconciler, log: log}
}

// List devuelve las categorías con su cantidad de productos. Si un conteo falla la
// categoría se informa con ProductCount -1.
func (uc *CategoryUseCase) List(ctx context.Context, sorted bool) (*dto.CategoryListResponse, error) {
	list, err := uc.registry.List(ctx)
	if err != nil {
		return nil, err
	}
	if sorted {
		list = list.Sorted()
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, name := range list {
		item := dto.CategoryResponse{Name: name, ProductCount: -1}
		n, err := uc.reconciler.CountByCategory(ctx, name)
		if err != nil {
			uc.log.Warn().Err(err).Str("category", name).Msg("no se pudo contar productos")
		} else {
			item.ProductCount = n
			item.CountLevel = entity.CountLevel(n)
		}
		items = append(items, item)
	}
	return &dto.CategoryListResponse{Items: items, Sorted: sorted}, nil
}

// Add agrega una categoría.
func (uc *CategoryUseCase) Add(ctx context.Context, in dto.AddCategoryRequest) (*dto.CategoryResponse, error) {
	name, err := uc.registry.Add(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{Name: name, ProductCount: 0, CountLevel: entity.CountLevel(0)}, nil
}

// Impact cuenta los productos afectados por renombrar o eliminar name.
func (uc *CategoryUseCase) Impact(ctx context.Context, name string) (*dto.CategoryImpactResponse, error) {
	n, err := uc.registry.RenamePreview(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryImpactResponse{Name: name, AffectedProducts: n}, nil
}

// Rename renombra oldName; con Cascade migra los productos antes de actualizar el registro.
// Ante una migración parcial devuelve el resultado con lo migrado y el error.
func (uc *CategoryUseCase) Rename(ctx context.Context, oldName string, in dto.RenameCategoryRequest) (*dto.RenameCategoryResponse, error) {
	migrated, err := uc.registry.Rename(ctx, oldName, in.NewName, in.Cascade)
	resp := &dto.RenameCategoryResponse{OldName: oldName, NewName: strings.TrimSpace(in.NewName), Migrated: migrated}
	return resp, err
}

// Remove elimina la categoría; los productos que la usaban quedan huérfanos.
func (uc *CategoryUseCase) Remove(ctx context.Context, name string) (*dto.RemoveCategoryResponse, error) {
	orphaned, err := uc.registry.Remove(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.RemoveCategoryResponse{Name: name, OrphanedProducts: orphaned}, nil
}
