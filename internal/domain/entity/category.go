package entity

import "sort"

// CategoryList nombres de categorías en el orden del registro.
// La comparación es exacta (sensible a mayúsculas).
type CategoryList []string

// Contains reporta si name está en la lista.
func (l CategoryList) Contains(name string) bool {
	return l.IndexOf(name) >= 0
}

// IndexOf devuelve la posición de name o -1.
func (l CategoryList) IndexOf(name string) int {
	for i, c := range l {
		if c == name {
			return i
		}
	}
	return -1
}

// Sorted devuelve una copia ordenada alfabéticamente; la lista original no cambia.
func (l CategoryList) Sorted() CategoryList {
	out := make(CategoryList, len(l))
	copy(out, l)
	sort.Strings(out)
	return out
}

// Clone copia la lista.
func (l CategoryList) Clone() CategoryList {
	out := make(CategoryList, len(l))
	copy(out, l)
	return out
}

// Niveles del contador de productos por categoría.
const (
	CountEmpty = "vacia"
	CountFew   = "pocos"
	CountMany  = "muchos"
)

// CountLevel clasifica la cantidad de productos de una categoría.
func CountLevel(n int) string {
	switch {
	case n == 0:
		return CountEmpty
	case n <= 5:
		return CountFew
	default:
		return CountMany
	}
}
