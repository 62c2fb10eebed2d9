package firebase

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/firestore/apiv1/firestorepb"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// productDoc documento de la colección de productos (nombres de campo heredados del panel web).
type productDoc struct {
	Code        string    `firestore:"codigo"`
	Name        string    `firestore:"nombre"`
	Category    string    `firestore:"categoria"`
	Price       float64   `firestore:"precio"`
	Quantity    int64     `firestore:"cantidad"`
	Description string    `firestore:"descripcion"`
	Image       string    `firestore:"imagen"`
	Waiting     bool      `firestore:"enEspera"`
	CreatedAt   time.Time `firestore:"creado,serverTimestamp"`
}

// ProductRepo implementa ProductRepository sobre una colección de Firestore.
type ProductRepo struct {
	col *firestore.CollectionRef
}

// NewProductRepository construye el repositorio sobre collection.
func NewProductRepository(client *firestore.Client, collection string) *ProductRepo {
	return &ProductRepo{col: client.Collection(collection)}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	doc := toDoc(p)
	doc.CreatedAt = time.Time{}
	ref, wr, err := r.col.Add(ctx, doc)
	if err != nil {
		return fmt.Errorf("firestore add: %w", err)
	}
	p.ID = ref.ID
	p.CreatedAt = wr.UpdateTime
	return nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	snap, err := r.col.Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("firestore get %s: %w", id, err)
	}
	return fromSnapshot(snap)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	d := toDoc(p)
	_, err := r.col.Doc(p.ID).Update(ctx, []firestore.Update{
		{Path: "codigo", Value: d.Code},
		{Path: "nombre", Value: d.Name},
		{Path: "categoria", Value: d.Category},
		{Path: "precio", Value: d.Price},
		{Path: "cantidad", Value: d.Quantity},
		{Path: "descripcion", Value: d.Description},
		{Path: "imagen", Value: d.Image},
		{Path: "enEspera", Value: d.Waiting},
	})
	return mapWriteErr(p.ID, err)
}

func (r *ProductRepo) Patch(ctx context.Context, id string, patch entity.ProductPatch) error {
	var updates []firestore.Update
	if patch.Category != nil {
		updates = append(updates, firestore.Update{Path: "categoria", Value: *patch.Category})
	}
	if patch.Quantity != nil {
		updates = append(updates, firestore.Update{Path: "cantidad", Value: int64(*patch.Quantity)})
	}
	if len(updates) == 0 {
		return nil
	}
	_, err := r.col.Doc(id).Update(ctx, updates)
	return mapWriteErr(id, err)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.col.Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete %s: %w", id, err)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.getAll(ctx, r.col.Query)
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Product, error) {
	return r.getAll(ctx, r.col.Where("categoria", "==", category))
}

// CountByCategory usa una agregación COUNT del servidor.
func (r *ProductRepo) CountByCategory(ctx context.Context, category string) (int, error) {
	q := r.col.Where("categoria", "==", category)
	res, err := q.NewAggregationQuery().WithCount("n").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("firestore count: %w", err)
	}
	v, ok := res["n"].(*firestorepb.Value)
	if !ok {
		return 0, fmt.Errorf("firestore count: respuesta inesperada %T", res["n"])
	}
	return int(v.GetIntegerValue()), nil
}

func (r *ProductRepo) getAll(ctx context.Context, q firestore.Query) ([]*entity.Product, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("firestore query: %w", err)
	}
	out := make([]*entity.Product, 0, len(snaps))
	for _, s := range snaps {
		p, err := fromSnapshot(s)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toDoc(p *entity.Product) productDoc {
	return productDoc{
		Code:        p.Code,
		Name:        p.Name,
		Category:    p.Category,
		Price:       p.Price.InexactFloat64(),
		Quantity:    int64(p.Quantity),
		Description: p.Description,
		Image:       p.Image,
		Waiting:     p.Waiting,
		CreatedAt:   p.CreatedAt,
	}
}

func fromSnapshot(snap *firestore.DocumentSnapshot) (*entity.Product, error) {
	var d productDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("firestore decode %s: %w", snap.Ref.ID, err)
	}
	return &entity.Product{
		ID:          snap.Ref.ID,
		Code:        d.Code,
		Name:        d.Name,
		Category:    d.Category,
		Price:       decimal.NewFromFloat(d.Price),
		Quantity:    int(d.Quantity),
		Description: d.Description,
		Image:       d.Image,
		Waiting:     d.Waiting,
		CreatedAt:   d.CreatedAt,
	}, nil
}

func mapWriteErr(id string, err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("firestore update %s: %w", id, err)
}
