package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo. La cantidad se mueve normalmente vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso. now puede ser nil (time.Now).
func NewProductUseCase(repo repository.ProductRepository, now func() time.Time) *ProductUseCase {
	if now == nil {
		now = time.Now
	}
	return &ProductUseCase{repo: repo, now: now}
}

// Create crea un producto con ID nuevo y fechas de creación/actualización.
// Los campos se aceptan tal como llegan; la validación es responsabilidad del llamador.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := uc.now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Code:          in.Code,
		Quantity:      in.Quantity,
		Category:      in.Category,
		Supplier:      in.Supplier,
		MinQuantity:   in.MinQuantity,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product), nil
}

// Update mezcla los campos no nulos y refresca UpdatedAt; (nil, nil) si el ID no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Code != nil {
		product.Code = *in.Code
	}
	if in.Quantity != nil {
		product.Quantity = *in.Quantity
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.MinQuantity != nil {
		product.MinQuantity = *in.MinQuantity
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	product.UpdatedAt = uc.now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product), nil
}

// List lista el catálogo en orden de inserción aplicando búsqueda y filtro de stock bajo.
func (uc *ProductUseCase) List(filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Code), search) {
			continue
		}
		if filter.LowStockOnly && !p.IsLowStock() {
			continue
		}
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// All devuelve las entidades completas (exportación CSV/PDF).
func (uc *ProductUseCase) All() ([]*entity.Product, error) {
	return uc.repo.List()
}

// Delete elimina un producto por ID. Devuelve false si no existía.
// Los movimientos que lo referencian quedan en el ledger.
func (uc *ProductUseCase) Delete(id string) (bool, error) {
	return uc.repo.Delete(id)
}

// ToProductResponse mapea la entidad al DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Code:          p.Code,
		Quantity:      p.Quantity,
		Category:      p.Category,
		Supplier:      p.Supplier,
		MinQuantity:   p.MinQuantity,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		LowStock:      p.IsLowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
