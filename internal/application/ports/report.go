package ports

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
)

// ReportData lo que se imprime en el reporte de inventario.
type ReportData struct {
	Title       string
	GeneratedAt time.Time
	Stats       *dto.DashboardStats
	Products    []*entity.Product
}

// ReportRenderer genera el reporte de inventario (implementado con Maroto en infraestructura).
type ReportRenderer interface {
	Render(ctx context.Context, data ReportData) ([]byte, error)
}
