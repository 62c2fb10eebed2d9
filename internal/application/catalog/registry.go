package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// CategoryRegistry es la autoridad sobre los nombres de categoría.
// Cada operación relee la lista del store y cada mutación la guarda completa; las mutaciones
// dentro del proceso se serializan con mu. Entre procesos gana la última escritura.
type CategoryRegistry struct {
	mu         sync.Mutex
	store      repository.CategoryStore
	reconciler *Reconciler
	log        *logger.Logger
}

// NewCategoryRegistry construye el registro.
func NewCategoryRegistry(store repository.CategoryStore, reconciler *Reconciler, log *logger.Logger) *CategoryRegistry {
	if log == nil {
		log = logger.Nop()
	}
	return &CategoryRegistry{store: store, reconciler: reconciler, log: log.Component("categories")}
}

// List devuelve las categorías en el orden del registro.
func (r *CategoryRegistry) List(ctx context.Context) (entity.CategoryList, error) {
	return r.store.Load(ctx)
}

// Sorted devuelve una copia ordenada para selects; no altera el orden guardado.
func (r *CategoryRegistry) Sorted(ctx context.Context) (entity.CategoryList, error) {
	list, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return list.Sorted(), nil
}

// Add agrega name (recortado) al final del registro.
func (r *CategoryRegistry) Add(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.store.Load(ctx)
	if err != nil {
		return "", err
	}
	if list.Contains(name) {
		return "", domain.ErrDuplicateCategory
	}
	list = append(list, name)
	if err := r.store.Save(ctx, list); err != nil {
		return "", err
	}
	r.log.Info().Str("category", name).Msg("categoría agregada")
	return name, nil
}

// RenamePreview cuenta los productos que un renombrado de name afectaría.
func (r *CategoryRegistry) RenamePreview(ctx context.Context, name string) (int, error) {
	return r.impact(ctx, name)
}

// RemovePreview cuenta los productos que quedarían huérfanos al eliminar name.
func (r *CategoryRegistry) RemovePreview(ctx context.Context, name string) (int, error) {
	return r.impact(ctx, name)
}

func (r *CategoryRegistry) impact(ctx context.Context, name string) (int, error) {
	list, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	if !list.Contains(name) {
		return 0, fmt.Errorf("categoría %q: %w", name, domain.ErrNotFound)
	}
	return r.reconciler.CountByCategory(ctx, name)
}

// Rename reemplaza oldName por newName en la misma posición del registro.
// Con cascade, los productos que usan oldName se migran antes de tocar el registro; si la
// migración falla el registro queda igual y se devuelve el error agregado junto con los
// productos que sí se migraron. Sin cascade los productos quedan con el nombre anterior.
func (r *CategoryRegistry) Rename(ctx context.Context, oldName, newName string, cascade bool) (int, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return 0, domain.ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	idx := list.IndexOf(oldName)
	if idx < 0 {
		return 0, fmt.Errorf("categoría %q: %w", oldName, domain.ErrNotFound)
	}
	if newName == oldName {
		return 0, nil
	}
	for i, c := range list {
		if i != idx && c == newName {
			return 0, domain.ErrDuplicateCategory
		}
	}

	migrated := 0
	if cascade {
		migrated, err = r.reconciler.MigrateCategory(ctx, oldName, newName)
		if err != nil {
			r.log.Error().Err(err).Str("from", oldName).Str("to", newName).
				Msg("renombrado cancelado: migración incompleta")
			return migrated, err
		}
	}

	list[idx] = newName
	if err := r.store.Save(ctx, list); err != nil {
		return migrated, err
	}
	r.log.Info().Str("from", oldName).Str("to", newName).Int("migrated", migrated).Msg("categoría renombrada")
	return migrated, nil
}

// Remove quita name del registro sin tocar productos: los que la usaban quedan huérfanos.
// Devuelve cuántos productos quedaron huérfanos (se cuenta antes de eliminar).
func (r *CategoryRegistry) Remove(ctx context.Context, name string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	idx := list.IndexOf(name)
	if idx < 0 {
		return 0, fmt.Errorf("categoría %q: %w", name, domain.ErrNotFound)
	}
	orphaned, err := r.reconciler.CountByCategory(ctx, name)
	if err != nil {
		return 0, err
	}

	list = append(list[:idx], list[idx+1:]...)
	if err := r.store.Save(ctx, list); err != nil {
		return 0, err
	}
	r.log.Info().Str("category", name).Int("orphaned", orphaned).Msg("categoría eliminada")
	return orphaned, nil
}
