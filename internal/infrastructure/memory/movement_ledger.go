package memory

import (
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementLedger)(nil)

// MovementLedger secuencia de movimientos solo-anexar.
type MovementLedger struct {
	items []entity.Movement
}

// NewMovementLedger construye el ledger vacío.
func NewMovementLedger() *MovementLedger {
	return &MovementLedger{}
}

// Append anexa una copia del movimiento al final del ledger.
func (l *MovementLedger) Append(movement *entity.Movement) error {
	l.items = append(l.items, *movement)
	return nil
}

// List devuelve copias en orden de inserción.
func (l *MovementLedger) List() ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0, len(l.items))
	for i := range l.items {
		m := l.items[i]
		out = append(out, &m)
	}
	return out, nil
}

// Count cantidad de movimientos registrados.
func (l *MovementLedger) Count() (int, error) {
	return len(l.items), nil
}

// Replace sustituye todo el contenido (carga desde persistencia). Ignora entradas nil.
func (l *MovementLedger) Replace(movements []*entity.Movement) {
	l.items = make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m == nil {
			continue
		}
		l.items = append(l.items, *m)
	}
}

func (l *MovementLedger) snapshot() []entity.Movement {
	return append([]entity.Movement(nil), l.items...)
}

func (l *MovementLedger) restore(items []entity.Movement) { l.items = items }
