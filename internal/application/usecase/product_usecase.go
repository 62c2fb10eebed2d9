package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD, listado y stock de productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryStore
	searcher   ports.ProductSearcher
	stock      *catalog.StockAdjuster
	thresholds entity.StockThresholds
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	categories repository.CategoryStore,
	searcher ports.ProductSearcher,
	thresholds entity.StockThresholds,
) *ProductUseCase {
	return &ProductUseCase{
		repo:       repo,
		categories: categories,
		searcher:   searcher,
		stock:      catalog.NewStockAdjuster(repo),
		thresholds: thresholds,
	}
}

// Create crea un nuevo producto; el store asigna ID y fecha de creación.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.Upstream("document store", err)
	}
	return uc.toResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream("document store", err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return uc.toResponse(product), nil
}

// Update reemplaza los campos editables. CreatedAt no cambia.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Upstream("document store", err)
	}
	if current == nil {
		return nil, domain.ErrNotFound
	}
	product, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	product.ID = current.ID
	product.CreatedAt = current.CreatedAt
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, domain.Upstream("document store", err)
	}
	return uc.toResponse(product), nil
}

// Delete elimina un producto (borrado definitivo).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Upstream("document store", err)
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return domain.Upstream("document store", err)
	}
	return nil
}

// List aplica filtros, búsqueda difusa y orden. El orden por defecto es más reciente primero.
func (uc *ProductUseCase) List(ctx context.Context, q dto.ProductListQuery) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, domain.Upstream("document store", err)
	}

	var registry entity.CategoryList
	if q.Orphaned {
		registry, err = uc.categories.Load(ctx)
		if err != nil {
			return nil, err
		}
	}

	filtered := products[:0]
	for _, p := range products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.OnlyNoStock && p.Quantity != 0 {
			continue
		}
		if q.Orphaned && !p.IsOrphan(registry) {
			continue
		}
		filtered = append(filtered, p)
	}

	if s := strings.TrimSpace(q.Search); s != "" && uc.searcher != nil {
		filtered = uc.searcher.Search(s, filtered)
	}
	if err := sortProducts(filtered, q.Order); err != nil {
		return nil, err
	}

	items := make([]dto.ProductResponse, 0, len(filtered))
	for _, p := range filtered {
		items = append(items, *uc.toResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Increment suma una unidad de stock.
func (uc *ProductUseCase) Increment(ctx context.Context, id string) (*dto.StockResponse, error) {
	qty, err := uc.stock.Increment(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ID: id, Quantity: qty, StockLevel: uc.thresholds.Level(qty)}, nil
}

// Decrement resta una unidad de stock sin bajar de cero.
func (uc *ProductUseCase) Decrement(ctx context.Context, id string) (*dto.StockResponse, error) {
	qty, err := uc.stock.Decrement(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.StockResponse{ID: id, Quantity: qty, StockLevel: uc.thresholds.Level(qty)}, nil
}

func productFromRequest(in dto.SaveProductRequest) (*entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: la categoría es obligatoria", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	return &entity.Product{
		Code:        strings.TrimSpace(in.Code),
		Name:        name,
		Category:    category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: strings.TrimSpace(in.Description),
		Image:       strings.TrimSpace(in.Image),
		Waiting:     in.Waiting,
	}, nil
}

func sortProducts(products []*entity.Product, order string) error {
	var less func(a, b *entity.Product) bool
	switch order {
	case "", dto.OrderCreatedDesc:
		less = func(a, b *entity.Product) bool { return a.CreatedAt.After(b.CreatedAt) }
	case dto.OrderCreatedAsc:
		less = func(a, b *entity.Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case dto.OrderPriceAsc:
		less = func(a, b *entity.Product) bool { return a.Price.LessThan(b.Price) }
	case dto.OrderPriceDesc:
		less = func(a, b *entity.Product) bool { return a.Price.GreaterThan(b.Price) }
	case dto.OrderStockAsc:
		less = func(a, b *entity.Product) bool { return a.Quantity < b.Quantity }
	case dto.OrderStockDesc:
		less = func(a, b *entity.Product) bool { return a.Quantity > b.Quantity }
	default:
		return fmt.Errorf("%w: orden %q no soportado", domain.ErrInvalidInput, order)
	}
	sort.SliceStable(products, func(i, j int) bool { return less(products[i], products[j]) })
	return nil
}

func (uc *ProductUseCase) toResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price,
		Quantity:    p.Quantity,
		StockLevel:  uc.thresholds.Level(p.Quantity),
		Description: p.Description,
		Image:       p.Image,
		Waiting:     p.Waiting,
		CreatedAt:   p.CreatedAt,
	}
}
