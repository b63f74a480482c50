package repository

import (
	"time"

	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// ProductRepository define el puerto del catálogo de productos (DIP).
// GetByID devuelve (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity solo cambia la cantidad (usado por la conciliación de movimientos).
	UpdateQuantity(productID string, quantity int, updatedAt time.Time) error
	List() ([]*entity.Product, error)
	// Delete devuelve false si el id no existía.
	Delete(id string) (bool, error)
}
