package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/domain"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/inventory"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

// RecordMovementUseCase registra entradas y salidas aplicando la regla de conciliación:
// el stock nunca queda negativo y el movimiento solo se anexa si la actualización del producto se aplica.
type RecordMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	now         func() time.Time
}

// NewRecordMovementUseCase construye el caso de uso. now puede ser nil (time.Now).
func NewRecordMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	now func() time.Time,
) *RecordMovementUseCase {
	if now == nil {
		now = time.Now
	}
	return &RecordMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		now:         now,
	}
}

// RecordMovement valida, resuelve el producto, concilia la cantidad y, dentro de TxRunner,
// actualiza el producto y anexa el movimiento.
//
// Errores: ErrInvalidInput (tipo/cantidad/precio), ErrNotFound (producto inexistente, sin cambios),
// ErrInsufficientStock (rechazo, sin cambios). LowStock en el resultado indica NuevaCantidad <= Mínimo.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResult, error) {
	if !entity.ValidMovementType(in.Type) || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	newQty, err := inventory.Reconcile(product.Quantity, in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice := inventory.DefaultUnitPrice(product, in.Type)
	if in.UnitPrice != nil {
		unitPrice = *in.UnitPrice
	}
	now := uc.now()
	mov := &entity.Movement{
		ID:          uuid.New().String(),
		ProductID:   product.ID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Date:        now,
		Description: in.Description,
		UnitPrice:   unitPrice,
		Total:       inventory.MovementTotal(in.Quantity, unitPrice),
	}

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.UpdateQuantity(product.ID, newQty, now); err != nil {
			return err
		}
		return movRepo.Append(mov)
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResult{
		Movement:    ToMovementResponse(mov, product.Name),
		NewQuantity: newQty,
		LowStock:    inventory.IsLowStock(newQty, product.MinQuantity),
	}, nil
}
