package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

func catalog() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Code: "X1", Name: "Trapo de piso", Category: "Limpieza"},
		{ID: "2", Code: "B2", Name: "Balde", Category: "Hogar", Description: "Plástico reforzado"},
		{ID: "3", Code: "J9", Name: "Jabón líquido", Category: "Baños"},
	}
}

func ids(ps []*entity.Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	all := catalog()
	assert.Equal(t, all, NewFuzzySearcher().Search("   ", all))
}

func TestSearch_FieldsAndAccents(t *testing.T) {
	s := NewFuzzySearcher()
	assert.Equal(t, []string{"3"}, ids(s.Search("jabon", catalog())), "ignora tildes")
	assert.Equal(t, []string{"2"}, ids(s.Search("plastico", catalog())), "busca en descripción")
	assert.Equal(t, []string{"1"}, ids(s.Search("x1", catalog())), "busca en código")
	assert.Equal(t, []string{"3"}, ids(s.Search("BAÑOS", catalog())))
}

func TestSearch_AllTermsMustMatchAndOrderIsKept(t *testing.T) {
	s := NewFuzzySearcher()
	assert.Equal(t, []string{"1"}, ids(s.Search("trapo limpieza", catalog())))
	assert.Empty(t, s.Search("trapo hogar", catalog()))
	assert.Equal(t, []string{"1"}, ids(s.Search("piso trapo", catalog())))
	assert.Equal(t, []string{"1", "2"}, ids(s.Search("e", catalog())))
}

func TestSearch_Typos(t *testing.T) {
	// letras salteadas coinciden: "blde" ⊂ "balde"
	assert.Equal(t, []string{"2"}, ids(NewFuzzySearcher().Search("blde", catalog())))
	assert.Empty(t, NewFuzzySearcher().Search("zzz", catalog()))
}
