// Package analytics contiene los casos de uso de lectura del Dashboard:
// totales del catálogo, compras, ventas, lucro y la serie diaria.
package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/inventory"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

const (
	DefaultRecentMovements = 5 // movimientos en el widget "últimas movimentaciones"
	DefaultSeriesDays      = 7
	dayLayout              = "2006-01-02"
)

// DashboardUseCase calcula las estadísticas recorriendo catálogo y ledger en cada consulta.
// No guarda estado propio: dos llamadas sin mutaciones intermedias devuelven lo mismo.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	recentLimit  int
	now          func() time.Time
}

// NewDashboardUseCase construye el caso de uso. recentLimit <= 0 usa DefaultRecentMovements.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	recentLimit int,
	now func() time.Time,
) *DashboardUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentMovements
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		recentLimit:  recentLimit,
		now:          now,
	}
}

// GetStats construye DashboardStats.
func (uc *DashboardUseCase) GetStats() (*dto.DashboardStats, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", err)
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", err)
	}

	// ── Catálogo ──────────────────────────────────────────────────────────────
	stats := &dto.DashboardStats{TotalProducts: len(products)}
	for _, p := range products {
		if p.IsLowStock() {
			stats.LowStockProducts++
		}
		stats.TotalQuantity += p.Quantity
	}

	// ── Financiero ────────────────────────────────────────────────────────────
	stats.TotalPurchases, stats.TotalSales = sumByType(movements)
	stats.Profit = stats.TotalSales.Sub(stats.TotalPurchases)

	stats.RecentMovements = inventory.RecentResponses(movements, inventory.ProductNames(products), uc.recentLimit)
	return stats, nil
}

// DailySeries agrupa los totales por día calendario (UTC) para los últimos days días
// incluyendo hoy, del más antiguo al más reciente. days <= 0 usa DefaultSeriesDays.
func (uc *DashboardUseCase) DailySeries(days int) (*dto.DailySeries, error) {
	if days <= 0 {
		days = DefaultSeriesDays
	}
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: serie diaria: %w", err)
	}

	type bucket struct{ sales, purchases decimal.Decimal }
	buckets := make(map[string]*bucket)
	for _, m := range movements {
		key := m.Date.UTC().Format(dayLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		switch m.Type {
		case entity.MovementTypeIN:
			b.purchases = b.purchases.Add(m.Total)
		case entity.MovementTypeOUT:
			b.sales = b.sales.Add(m.Total)
		}
	}

	today := uc.now().UTC()
	points := make([]dto.DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dayLayout)
		p := dto.DailyPoint{Date: key, Sales: decimal.Zero, Purchases: decimal.Zero}
		if b, ok := buckets[key]; ok {
			p.Sales = b.sales
			p.Purchases = b.purchases
		}
		p.Profit = p.Sales.Sub(p.Purchases)
		points = append(points, p)
	}
	return &dto.DailySeries{Days: days, Points: points}, nil
}

// sumByType devuelve (compras, ventas) = suma de Total de IN y de OUT.
func sumByType(movements []*entity.Movement) (purchases, sales decimal.Decimal) {
	purchases, sales = decimal.Zero, decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypeIN:
			purchases = purchases.Add(m.Total)
		case entity.MovementTypeOUT:
			sales = sales.Add(m.Total)
		}
	}
	return purchases, sales
}
