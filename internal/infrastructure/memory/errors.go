package memory

import (
	"fmt"

	"github.com/jhoicas/catalogo-admin/internal/domain"
)

func errNotFound(id string) error {
	return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
}
