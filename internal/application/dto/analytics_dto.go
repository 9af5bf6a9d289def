package dto

import "github.com/shopspring/decimal"

// DashboardResponse agregados principales del panel.
type DashboardResponse struct {
	TotalGreenStock     float64         `json:"total_green_stock_kg"`
	LowStockBeans       int             `json:"low_stock_beans"`
	SessionsThisMonth   int             `json:"sessions_this_month"`
	AverageYield        float64         `json:"average_yield_percent"`
	RevenueThisMonth    decimal.Decimal `json:"revenue_this_month"`
	RevenueChange       float64         `json:"revenue_change_percent"`
	SalesCountThisMonth int             `json:"sales_count_this_month"`
	InventoryValue      decimal.Decimal `json:"inventory_value"`
}

// StockTrendResponse proyección de consumo de un lote.
type StockTrendResponse struct {
	GreenBeanID   string  `json:"green_bean_id"`
	Variety       string  `json:"variety"`
	Quantity      float64 `json:"quantity_kg"`
	StockLevel    string  `json:"stock_level"`
	UsageRate     float64 `json:"usage_rate_kg_per_day"`
	DaysRemaining float64 `json:"days_remaining"`
	TurnoverRate  float64 `json:"turnover_rate"`
}

// YieldSummaryResponse rendimiento histórico de un lote.
type YieldSummaryResponse struct {
	GreenBeanID  string  `json:"green_bean_id"`
	Sessions     int     `json:"sessions"`
	AverageYield float64 `json:"average_yield_percent"`
}

// SalesSummaryResponse agregados de ventas de un rango.
type SalesSummaryResponse struct {
	Revenue           decimal.Decimal `json:"revenue"`
	SalesCount        int             `json:"sales_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	RevenueChange     float64         `json:"revenue_change_percent"`
	GreenRevenue      decimal.Decimal `json:"green_revenue"`
	RoastedRevenue    decimal.Decimal `json:"roasted_revenue"`
}
