package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialReportResponse informe financiero de un rango de fechas.
type FinancialReportResponse struct {
	StartDate          time.Time        `json:"start_date"`
	EndDate            time.Time        `json:"end_date"`
	Revenue            decimal.Decimal  `json:"revenue"`
	EstimatedCOGS      decimal.Decimal  `json:"estimated_cogs"`
	GrossProfit        decimal.Decimal  `json:"gross_profit"`
	GrossMarginPercent float64          `json:"gross_margin_percent"`
	SalesCount         int              `json:"sales_count"`
	AverageOrderValue  decimal.Decimal  `json:"average_order_value"`
	InventoryValue     decimal.Decimal  `json:"inventory_value"`
	GreenRevenue       decimal.Decimal  `json:"green_revenue"`
	RoastedRevenue     decimal.Decimal  `json:"roasted_revenue"`
	MonthlyTrend       []MonthlyRevenue `json:"monthly_trend"`
}

// MonthlyRevenue ingreso agregado de un mes calendario.
type MonthlyRevenue struct {
	Month      string          `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	SalesCount int             `json:"sales_count"`
}
