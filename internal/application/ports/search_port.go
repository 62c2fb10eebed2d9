package ports

import "github.com/jhoicas/catalogo-admin/internal/domain/entity"

// ProductSearcher filtra productos por una consulta difusa. Una consulta vacía devuelve
// products sin cambios; el resultado conserva el orden de products.
type ProductSearcher interface {
	Search(query string, products []*entity.Product) []*entity.Product
}
