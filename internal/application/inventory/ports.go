package inventory

import (
	"context"

	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

// TxRunner ejecuta una función de forma atómica sobre el ledger y el catálogo:
// si fn devuelve error no queda ningún cambio aplicado.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
