package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unassigned es el valor de Category de un producto sin categoría.
const Unassigned = ""

// Product representa un producto del catálogo.
// Category es una referencia débil por nombre a una categoría del registro: el store no
// garantiza integridad y el nombre puede quedar huérfano tras eliminar la categoría.
type Product struct {
	ID          string
	Code        string          // clave natural para deduplicar importaciones (no única)
	Name        string
	Category    string
	Price       decimal.Decimal // nunca negativo
	Quantity    int             // nunca negativo
	Description string
	Image       string          // URL pública
	Waiting     bool            // en espera / pedido pendiente
	CreatedAt   time.Time       // asignado por el store, inmutable
}

// IsOrphan indica si la categoría del producto no figura en categories (o está sin asignar).
func (p *Product) IsOrphan(categories CategoryList) bool {
	return p.Category == Unassigned || !categories.Contains(p.Category)
}

// ProductPatch actualización parcial de campos; nil = sin cambios.
type ProductPatch struct {
	Category *string
	Quantity *int
}

// Stock levels para el badge de existencias.
const (
	StockCritical = "critico"
	StockLow      = "bajo"
	StockMedium   = "medio"
	StockOK       = "ok"
)

// StockThresholds umbrales inclusivos de cantidad por nivel.
type StockThresholds struct {
	Critical int
	Low      int
	Medium   int
}

// Level clasifica quantity según los umbrales.
func (t StockThresholds) Level(quantity int) string {
	switch {
	case quantity <= t.Critical:
		return StockCritical
	case quantity <= t.Low:
		return StockLow
	case quantity <= t.Medium:
		return StockMedium
	default:
		return StockOK
	}
}
