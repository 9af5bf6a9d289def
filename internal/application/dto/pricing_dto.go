package dto

import "github.com/shopspring/decimal"

// PricingRequest entrada del cálculo de precio de café tostado.
type PricingRequest struct {
	GreenBeanID      string          `json:"green_bean_id" validate:"required"`
	ElectricityCost  decimal.Decimal `json:"electricity_cost_per_kg"`
	LaborCost        decimal.Decimal `json:"labor_cost_per_kg"`
	PackagingCost    decimal.Decimal `json:"packaging_cost_per_kg"`
	OverheadCost     decimal.Decimal `json:"overhead_cost_per_kg"`
	TargetMargin     decimal.Decimal `json:"target_margin_percent"`
}

// PricingResponse desglose del costo y precio sugerido por kg tostado.
type PricingResponse struct {
	GreenBeanID        string          `json:"green_bean_id"`
	GreenCostPerKg     decimal.Decimal `json:"green_cost_per_kg"`
	RoastedCostPerKg   decimal.Decimal `json:"roasted_cost_per_kg"`
	OperatingCostPerKg decimal.Decimal `json:"operating_cost_per_kg"`
	SuggestedPricePerKg decimal.Decimal `json:"suggested_price_per_kg"`
	ProfitPerKg        decimal.Decimal `json:"profit_per_kg"`
	TargetMargin       decimal.Decimal `json:"target_margin_percent"`
}
