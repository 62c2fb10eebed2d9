package catalog

import (
	"context"
	"fmt"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// Reconciler mantiene la referencia débil Product.Category alineada con el registro.
// Es el único componente que reescribe la categoría de productos existentes.
type Reconciler struct {
	products repository.ProductRepository
	log      *logger.Logger
}

// NewReconciler construye el reconciliador.
func NewReconciler(products repository.ProductRepository, log *logger.Logger) *Reconciler {
	if log == nil {
		log = logger.Nop()
	}
	return &Reconciler{products: products, log: log.Component("reconciler")}
}

// CountByCategory cuenta productos cuya categoría es exactamente name.
func (r *Reconciler) CountByCategory(ctx context.Context, name string) (int, error) {
	n, err := r.products.CountByCategory(ctx, name)
	if err != nil {
		return 0, domain.Upstream("document store", err)
	}
	return n, nil
}

// PatchFailure producto cuya migración falló.
type PatchFailure struct {
	ProductID string
	Err       error
}

// MigrationError agrega los fallos de una migración parcial. Los productos ya migrados
// no se revierten.
type MigrationError struct {
	From, To  string
	Attempted int
	Failures  []PatchFailure
}

func (e *MigrationError) Error() string {
	return fmt.Sprintf("migrar categoría %q a %q: %d de %d productos fallaron",
		e.From, e.To, len(e.Failures), e.Attempted)
}

// Unwrap expone ErrUpstream y cada fallo individual para errors.Is / errors.As.
func (e *MigrationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, domain.ErrUpstream)
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// MigrateCategory reescribe category de oldName a newName en todos los productos que la usan.
// Los parches se aplican en el orden de la consulta, uno por uno; un fallo no detiene los
// siguientes. Devuelve cuántos se migraron y un *MigrationError si alguno falló.
func (r *Reconciler) MigrateCategory(ctx context.Context, oldName, newName string) (int, error) {
	products, err := r.products.ListByCategory(ctx, oldName)
	if err != nil {
		return 0, domain.Upstream("document store", err)
	}

	var failures []PatchFailure
	migrated := 0
	for _, p := range products {
		target := newName
		if err := r.products.Patch(ctx, p.ID, entity.ProductPatch{Category: &target}); err != nil {
			r.log.Warn().Err(err).Str("product_id", p.ID).Str("from", oldName).Str("to", newName).
				Msg("no se pudo migrar la categoría del producto")
			failures = append(failures, PatchFailure{ProductID: p.ID, Err: err})
			continue
		}
		migrated++
	}

	r.log.Info().Str("from", oldName).Str("to", newName).
		Int("migrated", migrated).Int("failed", len(failures)).Msg("migración de categoría")

	if len(failures) > 0 {
		return migrated, &MigrationError{From: oldName, To: newName, Attempted: len(products), Failures: failures}
	}
	return migrated, nil
}
