package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnknownProductName se muestra para movimientos cuyo producto fue eliminado.
const UnknownProductName = "producto desconocido"

// Product representa un producto del catálogo.
// Quantity solo debería cambiar vía movimientos; una edición directa no deja rastro en el ledger.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"` // código de barras o SKU
	Quantity      int             `json:"quantity"`
	Category      string          `json:"category"`
	Supplier      string          `json:"supplier"`
	MinQuantity   int             `json:"minQuantity"` // umbral de stock bajo (inclusive)
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// IsLowStock indica si la cantidad actual está en o por debajo del mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinQuantity
}

// Clone devuelve una copia independiente del producto.
func (p *Product) Clone() *Product {
	c := *p
	return &c
}
