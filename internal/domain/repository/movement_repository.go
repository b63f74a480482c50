package repository

import "github.com/jhoicas/inventario-tracker/internal/domain/entity"

// MovementRepository define el puerto del ledger de movimientos. Solo admite anexar:
// no hay Update ni Delete.
type MovementRepository interface {
	Append(movement *entity.Movement) error
	// List devuelve los movimientos en orden de inserción.
	List() ([]*entity.Movement, error)
	Count() (int, error)
}
