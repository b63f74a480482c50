package inventory

import (
	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

// MovementQueryUseCase lectura del ledger con nombres de producto resueltos.
type MovementQueryUseCase struct {
	movementRepo repository.MovementRepository
	productRepo  repository.ProductRepository
}

// NewMovementQueryUseCase construye el caso de uso.
func NewMovementQueryUseCase(movementRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementQueryUseCase {
	return &MovementQueryUseCase{movementRepo: movementRepo, productRepo: productRepo}
}

// List devuelve hasta limit movimientos, el más reciente primero. limit <= 0 = todos.
func (uc *MovementQueryUseCase) List(limit int) (*dto.MovementListResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	names := ProductNames(products)
	items := RecentResponses(movements, names, limit)
	return &dto.MovementListResponse{Items: items, Total: len(movements)}, nil
}

// ProductNames indexa nombres por ID para resolver referencias débiles.
func ProductNames(products []*entity.Product) map[string]string {
	names := make(map[string]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}
	return names
}

// RecentResponses toma los últimos limit movimientos (orden de inserción) y los devuelve invertidos.
func RecentResponses(movements []*entity.Movement, names map[string]string, limit int) []dto.MovementResponse {
	start := 0
	if limit > 0 && len(movements) > limit {
		start = len(movements) - limit
	}
	out := make([]dto.MovementResponse, 0, len(movements)-start)
	for i := len(movements) - 1; i >= start; i-- {
		m := movements[i]
		out = append(out, ToMovementResponse(m, ResolveName(names, m.ProductID)))
	}
	return out
}

// ResolveName devuelve entity.UnknownProductName si el producto ya no existe.
func ResolveName(names map[string]string, productID string) string {
	if name, ok := names[productID]; ok {
		return name
	}
	return entity.UnknownProductName
}

// ToMovementResponse mapea la entidad al DTO de salida.
func ToMovementResponse(m *entity.Movement, productName string) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       m.Total,
		Date:        m.Date,
		Description: m.Description,
	}
}
