package memory

import (
	"context"

	"github.com/jhoicas/inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks con todo-o-nada sobre el catálogo y el ledger en memoria:
// toma una instantánea antes de fn y la restaura si fn devuelve error.
type TxRunner struct {
	products  *ProductStore
	movements *MovementLedger
}

// NewTxRunner construye el runner sobre los stores de la sesión.
func NewTxRunner(products *ProductStore, movements *MovementLedger) *TxRunner {
	return &TxRunner{products: products, movements: movements}
}

// Run ejecuta fn y hace "rollback" restaurando la instantánea si falla.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	productsBefore := r.products.snapshot()
	movementsBefore := r.movements.snapshot()

	if err := fn(r.movements, r.products); err != nil {
		r.products.restore(productsBefore)
		r.movements.restore(movementsBefore)
		return err
	}
	return nil
}
