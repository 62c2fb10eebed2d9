package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o reemplazar un producto.
type SaveProductRequest struct {
	Code        string          `json:"code" validate:"max=100"`
	Name        string          `json:"name" validate:"notblank,max=200"`
	Category    string          `json:"category" validate:"notblank,max=100"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Description string          `json:"description" validate:"max=2000"`
	Image       string          `json:"image" validate:"required,url"`
	Waiting     bool            `json:"waiting"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	StockLevel  string          `json:"stock_level"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Waiting     bool            `json:"waiting"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Órdenes de listado soportados.
const (
	OrderCreatedDesc = "creado_desc"
	OrderCreatedAsc  = "creado_asc"
	OrderPriceAsc    = "precio_asc"
	OrderPriceDesc   = "precio_desc"
	OrderStockAsc    = "stock_asc"
	OrderStockDesc   = "stock_desc"
)

// ProductListQuery filtros del listado.
type ProductListQuery struct {
	Search      string `query:"q"`
	Order       string `query:"order" validate:"omitempty,oneof=creado_desc creado_asc precio_asc precio_desc stock_asc stock_desc"`
	Category    string `query:"category"`
	OnlyNoStock bool   `query:"only_no_stock"`
	Orphaned    bool   `query:"orphaned"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// StockResponse resultado de un ajuste de stock.
type StockResponse struct {
	ID         string `json:"id"`
	Quantity   int    `json:"quantity"`
	StockLevel string `json:"stock_level"`
}
