package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordMovementRequest body para POST /api/inventory/movements.
// Si UnitPrice es nil se usa el precio de compra (IN) o de venta (OUT) del producto.
type RecordMovementRequest struct {
	ProductID   string           `json:"productId" validate:"required"`
	Type        string           `json:"type" validate:"required,oneof=IN OUT"`
	Quantity    int              `json:"quantity" validate:"gt=0"`
	UnitPrice   *decimal.Decimal `json:"unitPrice,omitempty"`
	Description string           `json:"description" validate:"max=500"`
}

// MovementResponse salida de un movimiento con el nombre del producto ya resuelto.
type MovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"` // "producto desconocido" si fue eliminado
	Type        string          `json:"type"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// MovementResult resultado de un movimiento aplicado.
type MovementResult struct {
	Movement    MovementResponse `json:"movement"`
	NewQuantity int              `json:"newQuantity"`
	LowStock    bool             `json:"lowStock"` // NewQuantity <= MinQuantity del producto
}

// MovementListResponse listado de movimientos, más recientes primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
	Total int                `json:"total"`
}
