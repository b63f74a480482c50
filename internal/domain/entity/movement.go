package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada (compra)
	MovementTypeOUT = "OUT" // salida (venta)
)

// Movement es un registro inmutable del ledger. Total se calcula al registrar y no se recalcula.
// ProductID es una referencia débil: el producto puede haber sido eliminado después.
type Movement struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	Type        string          `json:"type"`
	Quantity    int             `json:"quantity"` // siempre positivo; el signo lo da Type
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// ValidMovementType indica si t es IN u OUT.
func ValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}
