package http

import (
	"context"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// InventoryService operaciones del núcleo que expone la API (implementado por session.Session).
type InventoryService interface {
	AddProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	UpdateProduct(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Products(ctx context.Context) ([]*entity.Product, error)

	RecordMovement(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResult, error)
	ListMovements(ctx context.Context, limit int) (*dto.MovementListResponse, error)

	DashboardStats(ctx context.Context) (*dto.DashboardStats, error)
	DailySeries(ctx context.Context, days int) (*dto.DailySeries, error)
}

// NotificationFeed notificaciones pendientes para el cliente.
type NotificationFeed interface {
	Drain() []dto.NotificationDTO
}
