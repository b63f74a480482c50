package dto

import "github.com/shopspring/decimal"

// DashboardStats respuesta de GET /api/dashboard/summary.
type DashboardStats struct {
	TotalProducts    int                `json:"totalProducts"`
	LowStockProducts int                `json:"lowStockProducts"` // quantity <= minQuantity
	TotalQuantity    int                `json:"totalQuantity"`
	TotalPurchases   decimal.Decimal    `json:"totalPurchases"` // suma de totales IN
	TotalSales       decimal.Decimal    `json:"totalSales"`     // suma de totales OUT
	Profit           decimal.Decimal    `json:"profit"`         // ventas - compras
	RecentMovements  []MovementResponse `json:"recentMovements"`
}

// DailyPoint totales de un día calendario (UTC) para el gráfico financiero.
type DailyPoint struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Sales     decimal.Decimal `json:"sales"`
	Purchases decimal.Decimal `json:"purchases"`
	Profit    decimal.Decimal `json:"profit"`
}

// DailySeries serie de los últimos N días, del más antiguo al más reciente.
type DailySeries struct {
	Days   int          `json:"days"`
	Points []DailyPoint `json:"points"`
}
