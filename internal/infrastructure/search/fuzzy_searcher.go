// Package search implementa la búsqueda difusa de productos del listado.
package search

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

var _ ports.ProductSearcher = (*FuzzySearcher)(nil)

// FuzzySearcher compara cada término de la consulta contra código, nombre, categoría y
// descripción, ignorando mayúsculas y tildes. Un producto coincide si todos los términos
// aparecen (en orden de caracteres) en alguno de esos campos.
type FuzzySearcher struct{}

// NewFuzzySearcher construye el buscador.
func NewFuzzySearcher() *FuzzySearcher { return &FuzzySearcher{} }

func (s *FuzzySearcher) Search(query string, products []*entity.Product) []*entity.Product {
	terms := strings.Fields(query)
	if len(terms) == 0 {
		return products
	}
	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		fields := []string{p.Code, p.Name, p.Category, p.Description}
		if s.matchesAll(terms, fields) {
			out = append(out, p)
		}
	}
	return out
}

func (s *FuzzySearcher) matchesAll(terms, fields []string) bool {
	for _, t := range terms {
		if !s.matchesAny(t, fields) {
			return false
		}
	}
	return true
}

func (s *FuzzySearcher) matchesAny(term string, fields []string) bool {
	return len(fuzzy.RankFindNormalizedFold(term, fields)) > 0
}
