package catalog_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
)

var errStoreDown = errors.New("store caído")

// flakyRepo envuelve el repo en memoria y falla en los ids o inserciones indicados.
type flakyRepo struct {
	*memory.ProductRepo

	mu          sync.Mutex
	failPatch   map[string]bool
	failCreate  map[string]bool // por nombre de producto
	failList    bool
	patchCalls  []string
	createCalls int
}

func newFlakyRepo() *flakyRepo {
	return &flakyRepo{
		ProductRepo: memory.NewProductRepo(),
		failPatch:   map[string]bool{},
		failCreate:  map[string]bool{},
	}
}

func (r *flakyRepo) Patch(ctx context.Context, id string, patch entity.ProductPatch) error {
	r.mu.Lock()
	r.patchCalls = append(r.patchCalls, id)
	fail := r.failPatch[id]
	r.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return r.ProductRepo.Patch(ctx, id, patch)
}

func (r *flakyRepo) Create(ctx context.Context, p *entity.Product) error {
	r.mu.Lock()
	r.createCalls++
	fail := r.failCreate[p.Name]
	r.mu.Unlock()
	if fail {
		return errStoreDown
	}
	return r.ProductRepo.Create(ctx, p)
}

func (r *flakyRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	if r.failList {
		return nil, errStoreDown
	}
	return r.ProductRepo.ListByCategory(ctx, category)
}

func (r *flakyRepo) List(ctx context.Context) ([]*entity.Product, error) {
	if r.failList {
		return nil, errStoreDown
	}
	return r.ProductRepo.List(ctx)
}

func (r *flakyRepo) seed(ctx context.Context, products ...*entity.Product) {
	for _, p := range products {
		if err := r.ProductRepo.Create(ctx, p); err != nil {
			panic(err)
		}
	}
}

type fixture struct {
	repo     *flakyRepo
	settings *memory.SettingsStore
	store    *catalog.SettingsCategoryStore
	registry *catalog.CategoryRegistry
}

func newFixture(ctx context.Context, categories ...string) *fixture {
	repo := newFlakyRepo()
	settings := memory.NewSettingsStore()
	store := catalog.NewSettingsCategoryStore(settings)
	if len(categories) > 0 {
		if err := store.Save(ctx, categories); err != nil {
			panic(err)
		}
	}
	reconciler := catalog.NewReconciler(repo, nil)
	return &fixture{
		repo:     repo,
		settings: settings,
		store:    store,
		registry: catalog.NewCategoryRegistry(store, reconciler, nil),
	}
}
