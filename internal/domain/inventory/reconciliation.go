package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tracker/internal/domain"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// Reconcile implementa la regla de conciliación de stock (servicio de dominio).
// NuevaCantidad = Actual + Cantidad (IN) o Actual - Cantidad (OUT); nunca negativa.
// Si el resultado fuera negativo devuelve ErrInsufficientStock y la cantidad actual sin cambios.
// Una entrada que desborda int es ErrInvalidInput.
func Reconcile(current int, movementType string, quantity int) (int, error) {
	var candidate int
	switch movementType {
	case entity.MovementTypeIN:
		if quantity > math.MaxInt-current {
			return current, domain.ErrInvalidInput
		}
		candidate = current + quantity
	case entity.MovementTypeOUT:
		candidate = current - quantity
	default:
		return current, domain.ErrInvalidInput
	}
	if candidate < 0 {
		return current, domain.ErrInsufficientStock
	}
	return candidate, nil
}

// IsLowStock compara la cantidad contra el umbral mínimo (inclusive).
func IsLowStock(quantity, minQuantity int) bool {
	return quantity <= minQuantity
}

// MovementTotal = Cantidad * PrecioUnitario, exacto en decimal.
func MovementTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// DefaultUnitPrice toma el precio de compra para entradas y el de venta para salidas.
func DefaultUnitPrice(product *entity.Product, movementType string) decimal.Decimal {
	if movementType == entity.MovementTypeOUT {
		return product.SalePrice
	}
	return product.PurchasePrice
}
