package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/internal/application/analytics"
	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
)

var today = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func d(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func seed(t *testing.T) (*memory.ProductStore, *memory.MovementLedger) {
	t.Helper()
	products := memory.NewProductStore()
	ledger := memory.NewMovementLedger()
	require.NoError(t, products.Create(&entity.Product{ID: "a", Name: "Arroz", Quantity: 10, MinQuantity: 2}))
	require.NoError(t, products.Create(&entity.Product{ID: "b", Name: "Sal", Quantity: 1, MinQuantity: 1}))

	movs := []*entity.Movement{
		{ID: "1", ProductID: "a", Type: entity.MovementTypeIN, Quantity: 10, Total: d("40"), Date: today.AddDate(0, 0, -8)},
		{ID: "2", ProductID: "a", Type: entity.MovementTypeOUT, Quantity: 2, Total: d("14"), Date: today.AddDate(0, 0, -2)},
		{ID: "3", ProductID: "b", Type: entity.MovementTypeIN, Quantity: 1, Total: d("3.5"), Date: today.AddDate(0, 0, -2)},
		{ID: "4", ProductID: "x", Type: entity.MovementTypeOUT, Quantity: 1, Total: d("9"), Date: today.Add(-time.Hour)},
		{ID: "5", ProductID: "a", Type: entity.MovementTypeOUT, Quantity: 1, Total: d("7"), Date: today},
		{ID: "6", ProductID: "b", Type: entity.MovementTypeIN, Quantity: 1, Total: d("3.5"), Date: today},
	}
	for _, m := range movs {
		require.NoError(t, ledger.Append(m))
	}
	return products, ledger
}

func TestDashboard_GetStats(t *testing.T) {
	products, ledger := seed(t)
	uc := analytics.NewDashboardUseCase(products, ledger, 0, func() time.Time { return today })

	stats, err := uc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalProducts)
	assert.Equal(t, 1, stats.LowStockProducts)
	assert.Equal(t, 11, stats.TotalQuantity)
	assert.True(t, d("47").Equal(stats.TotalPurchases), stats.TotalPurchases.String())
	assert.True(t, d("30").Equal(stats.TotalSales), stats.TotalSales.String())
	assert.True(t, d("-17").Equal(stats.Profit), stats.Profit.String())

	require.Len(t, stats.RecentMovements, analytics.DefaultRecentMovements)
	assert.Equal(t, "6", stats.RecentMovements[0].ID)
	assert.Equal(t, "2", stats.RecentMovements[4].ID)
	assert.Equal(t, entity.UnknownProductName, stats.RecentMovements[2].ProductName)
	assert.Equal(t, "Sal", stats.RecentMovements[0].ProductName)
}

func TestDashboard_GetStatsIdempotente(t *testing.T) {
	products, ledger := seed(t)
	uc := analytics.NewDashboardUseCase(products, ledger, 3, func() time.Time { return today })

	first, err := uc.GetStats()
	require.NoError(t, err)
	second, err := uc.GetStats()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, first.RecentMovements, 3)
}

func TestDashboard_GetStatsVacio(t *testing.T) {
	uc := analytics.NewDashboardUseCase(memory.NewProductStore(), memory.NewMovementLedger(), 0, nil)

	stats, err := uc.GetStats()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalProducts)
	assert.True(t, stats.Profit.IsZero())
	assert.NotNil(t, stats.RecentMovements)
	assert.Empty(t, stats.RecentMovements)
}

func TestDashboard_DailySeries(t *testing.T) {
	products, ledger := seed(t)
	uc := analytics.NewDashboardUseCase(products, ledger, 0, func() time.Time { return today })

	series, err := uc.DailySeries(0)
	require.NoError(t, err)
	assert.Equal(t, analytics.DefaultSeriesDays, series.Days)
	require.Len(t, series.Points, 7)
	assert.Equal(t, "2026-03-04", series.Points[0].Date)
	assert.Equal(t, "2026-03-10", series.Points[6].Date)

	// 2026-03-08: venta 14, compra 3.5
	p := series.Points[4]
	assert.Equal(t, "2026-03-08", p.Date)
	assert.True(t, d("14").Equal(p.Sales))
	assert.True(t, d("3.5").Equal(p.Purchases))
	assert.True(t, d("10.5").Equal(p.Profit))

	// Hoy: ventas 9 + 7, compra 3.5
	last := series.Points[6]
	assert.True(t, d("16").Equal(last.Sales))
	assert.True(t, d("3.5").Equal(last.Purchases))

	// Días sin movimientos quedan en cero; el movimiento de hace 8 días queda fuera.
	assert.True(t, series.Points[0].Sales.IsZero())
	assert.True(t, series.Points[0].Purchases.IsZero())
}

func TestDashboard_DailySeriesAgrupaEnUTC(t *testing.T) {
	products := memory.NewProductStore()
	ledger := memory.NewMovementLedger()
	bogota := time.FixedZone("COT", -5*3600)
	// 2026-03-09 22:00 en Bogotá = 2026-03-10 03:00 UTC
	require.NoError(t, ledger.Append(&entity.Movement{
		ID: "1", Type: entity.MovementTypeOUT, Total: d("5"),
		Date: time.Date(2026, 3, 9, 22, 0, 0, 0, bogota),
	}))
	uc := analytics.NewDashboardUseCase(products, ledger, 0, func() time.Time { return today })

	series, err := uc.DailySeries(2)
	require.NoError(t, err)
	require.Len(t, series.Points, 2)
	assert.True(t, series.Points[0].Sales.IsZero())
	assert.True(t, d("5").Equal(series.Points[1].Sales))
}
