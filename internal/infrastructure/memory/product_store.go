package memory

import (
	"fmt"
	"time"

	"github.com/jhoicas/inventario-tracker/internal/domain"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore catálogo en memoria en orden de inserción.
// Entrega y guarda copias para que nadie fuera del store mute su estado.
// No es seguro para uso concurrente: la sesión serializa el acceso.
type ProductStore struct {
	items []*entity.Product
}

// NewProductStore construye el catálogo vacío.
func NewProductStore() *ProductStore {
	return &ProductStore{}
}

// Create agrega un producto al final del catálogo.
func (s *ProductStore) Create(product *entity.Product) error {
	if s.indexOf(product.ID) >= 0 {
		return fmt.Errorf("create product %s: id duplicado", product.ID)
	}
	s.items = append(s.items, product.Clone())
	return nil
}

// GetByID devuelve una copia del producto o (nil, nil).
func (s *ProductStore) GetByID(id string) (*entity.Product, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, nil
	}
	return s.items[i].Clone(), nil
}

// Update reemplaza el producto con el mismo ID.
func (s *ProductStore) Update(product *entity.Product) error {
	i := s.indexOf(product.ID)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.items[i] = product.Clone()
	return nil
}

// UpdateQuantity cambia solo cantidad y fecha de actualización.
func (s *ProductStore) UpdateQuantity(productID string, quantity int, updatedAt time.Time) error {
	i := s.indexOf(productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	s.items[i].Quantity = quantity
	s.items[i].UpdatedAt = updatedAt
	return nil
}

// List devuelve copias en orden de inserción.
func (s *ProductStore) List() ([]*entity.Product, error) {
	return cloneProducts(s.items), nil
}

// Delete elimina sin dejar lápida. Devuelve false si no existía.
func (s *ProductStore) Delete(id string) (bool, error) {
	i := s.indexOf(id)
	if i < 0 {
		return false, nil
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	return true, nil
}

// Replace sustituye todo el contenido (carga desde persistencia).
func (s *ProductStore) Replace(products []*entity.Product) {
	s.items = cloneProducts(products)
}

func (s *ProductStore) snapshot() []*entity.Product { return cloneProducts(s.items) }

func (s *ProductStore) restore(items []*entity.Product) { s.items = items }

func (s *ProductStore) indexOf(id string) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func cloneProducts(in []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}
