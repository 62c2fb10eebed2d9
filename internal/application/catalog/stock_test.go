package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

func TestDecrement_NeverBelowZero(t *testing.T) {
	for _, start := range []int{0, 1, 2, 7} {
		ctx := context.Background()
		repo := newFlakyRepo()
		p := &entity.Product{Quantity: start}
		repo.seed(ctx, p)
		s := catalog.NewStockAdjuster(repo)

		for i := 0; i < start+3; i++ {
			q, err := s.Decrement(ctx, p.ID)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, q, 0)
		}
		got, _ := repo.GetByID(ctx, p.ID)
		assert.Zero(t, got.Quantity)
	}
}

func TestDecrement_AtZeroDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	p := &entity.Product{Quantity: 0}
	repo.seed(ctx, p)

	q, err := catalog.NewStockAdjuster(repo).Decrement(ctx, p.ID)
	require.NoError(t, err)
	assert.Zero(t, q)
	assert.Empty(t, repo.patchCalls)
}

func TestIncrement(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	p := &entity.Product{Quantity: 4}
	repo.seed(ctx, p)

	q, err := catalog.NewStockAdjuster(repo).Increment(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, q)
}

func TestAdjust_UnknownProduct(t *testing.T) {
	_, err := catalog.NewStockAdjuster(newFlakyRepo()).Increment(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAdjust_PatchFailure(t *testing.T) {
	ctx := context.Background()
	repo := newFlakyRepo()
	p := &entity.Product{Quantity: 4}
	repo.seed(ctx, p)
	repo.failPatch[p.ID] = true

	q, err := catalog.NewStockAdjuster(repo).Increment(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Equal(t, 4, q)
}
