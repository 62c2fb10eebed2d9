package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
)

func newCategoryUseCase(t *testing.T, categories ...string) (*usecase.CategoryUseCase, *memory.ProductRepo) {
	t.Helper()
	ctx := context.Background()
	repo := memory.NewProductRepo()
	store := catalog.NewSettingsCategoryStore(memory.NewSettingsStore())
	require.NoError(t, store.Save(ctx, categories))
	rec := catalog.NewReconciler(repo, nil)
	return usecase.NewCategoryUseCase(catalog.NewCategoryRegistry(store, rec, nil), rec, nil), repo
}

func TestCategoryList_WithCounts(t *testing.T) {
	ctx := context.Background()
	uc, repo := newCategoryUseCase(t, "Zeta", "Limpieza")
	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Product{Category: "Limpieza"}))
	}

	resp, err := uc.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Zeta", resp.Items[0].Name)
	assert.Equal(t, entity.CountEmpty, resp.Items[0].CountLevel)
	assert.Equal(t, 6, resp.Items[1].ProductCount)
	assert.Equal(t, entity.CountMany, resp.Items[1].CountLevel)

	resp, err = uc.List(ctx, true)
	require.NoError(t, err)
	assert.True(t, resp.Sorted)
	assert.Equal(t, "Limpieza", resp.Items[0].Name)
}

func TestCategoryRenameAndRemove(t *testing.T) {
	ctx := context.Background()
	uc, repo := newCategoryUseCase(t, "Limpieza")
	p := &entity.Product{Category: "Limpieza"}
	require.NoError(t, repo.Create(ctx, p))

	impact, err := uc.Impact(ctx, "Limpieza")
	require.NoError(t, err)
	assert.Equal(t, 1, impact.AffectedProducts)

	resp, err := uc.Rename(ctx, "Limpieza", dto.RenameCategoryRequest{NewName: " Aseo ", Cascade: true})
	require.NoError(t, err)
	assert.Equal(t, "Aseo", resp.NewName)
	assert.Equal(t, 1, resp.Migrated)

	rm, err := uc.Remove(ctx, "Aseo")
	require.NoError(t, err)
	assert.Equal(t, 1, rm.OrphanedProducts)

	_, err = uc.Impact(ctx, "Aseo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryAdd(t *testing.T) {
	uc, _ := newCategoryUseCase(t)
	resp, err := uc.Add(context.Background(), dto.AddCategoryRequest{Name: "Cocina"})
	require.NoError(t, err)
	assert.Equal(t, "Cocina", resp.Name)
	assert.Equal(t, entity.CountEmpty, resp.CountLevel)
}
