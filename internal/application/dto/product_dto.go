package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Code          string          `json:"code" validate:"max=100"`
	Quantity      int             `json:"quantity" validate:"min=0"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	MinQuantity   int             `json:"minQuantity" validate:"min=0"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
}

// UpdateProductRequest entrada parcial: solo se aplican los campos no nulos.
// Quantity puede editarse directamente pero no deja movimiento en el ledger.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Code          *string          `json:"code" validate:"omitempty,max=100"`
	Quantity      *int             `json:"quantity" validate:"omitempty,min=0"`
	Category      *string          `json:"category"`
	Supplier      *string          `json:"supplier"`
	MinQuantity   *int             `json:"minQuantity" validate:"omitempty,min=0"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Quantity      int             `json:"quantity"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	MinQuantity   int             `json:"minQuantity"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	LowStock      bool            `json:"lowStock"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ProductFilter filtros del listado: búsqueda por nombre o código y solo stock bajo.
type ProductFilter struct {
	Search       string `query:"search"`
	LowStockOnly bool   `query:"low_stock"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
