package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// CategoriesKey clave del settings store donde se guarda la lista de categorías (JSON array).
const CategoriesKey = "categorias"

// SettingsCategoryStore persiste la lista de categorías como un único valor JSON en el settings store.
type SettingsCategoryStore struct {
	settings repository.SettingsStore
}

var _ repository.CategoryStore = (*SettingsCategoryStore)(nil)

// NewSettingsCategoryStore construye el store.
func NewSettingsCategoryStore(settings repository.SettingsStore) *SettingsCategoryStore {
	return &SettingsCategoryStore{settings: settings}
}

// Load lee la lista; si la clave no existe devuelve una lista vacía.
func (s *SettingsCategoryStore) Load(ctx context.Context) (entity.CategoryList, error) {
	raw, err := s.settings.Get(ctx, CategoriesKey)
	if err != nil {
		return nil, domain.Upstream("settings", err)
	}
	if len(raw) == 0 {
		return entity.CategoryList{}, nil
	}
	var list entity.CategoryList
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("categorías guardadas ilegibles: %w", err)
	}
	if list == nil {
		list = entity.CategoryList{}
	}
	return list, nil
}

// Save reemplaza la lista completa.
func (s *SettingsCategoryStore) Save(ctx context.Context, categories entity.CategoryList) error {
	if categories == nil {
		categories = entity.CategoryList{}
	}
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("serializar categorías: %w", err)
	}
	if err := s.settings.Set(ctx, CategoriesKey, raw); err != nil {
		return domain.Upstream("settings", err)
	}
	return nil
}
