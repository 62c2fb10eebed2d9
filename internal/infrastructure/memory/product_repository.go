package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// ProductRepo implementa ProductRepository en memoria (desarrollo y tests).
// Los listados respetan el orden de inserción.
type ProductRepo struct {
	mu    sync.RWMutex
	byID  map[string]*entity.Product
	order []string
	now   func() time.Time
}

var _ repository.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo crea un repositorio vacío.
func NewProductRepo() *ProductRepo {
	return &ProductRepo{byID: make(map[string]*entity.Product), now: time.Now}
}

// WithClock fija el reloj usado para CreatedAt.
func (r *ProductRepo) WithClock(now func() time.Time) *ProductRepo {
	r.now = now
	return r
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = uuid.New().String()
	product.CreatedAt = r.now().UTC()
	cp := *product
	r.byID[cp.ID] = &cp
	r.order = append(r.order, cp.ID)
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[product.ID]
	if !ok {
		return errNotFound(product.ID)
	}
	cp := *product
	cp.CreatedAt = cur.CreatedAt
	r.byID[cp.ID] = &cp
	return nil
}

func (r *ProductRepo) Patch(ctx context.Context, id string, patch entity.ProductPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return errNotFound(id)
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.filter(func(*entity.Product) bool { return true }), nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.filter(func(p *entity.Product) bool { return p.Category == category }), nil
}

func (r *ProductRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, p := range r.byID {
		if p.Category == category {
			n++
		}
	}
	return n, nil
}

func (r *ProductRepo) filter(keep func(*entity.Product) bool) []*entity.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out
}
