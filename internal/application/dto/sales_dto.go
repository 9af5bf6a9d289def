package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta. Para café tostado
// ProductID puede ir vacío: se asigna el producto tostado único.
type CreateSaleRequest struct {
	ProductType   string          `json:"product_type" validate:"required,oneof=green roasted"`
	ProductID     string          `json:"product_id"`
	Quantity      float64         `json:"quantity_kg" validate:"required,gt=0"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	PaymentMethod string          `json:"payment_method" validate:"required,oneof=cash card transfer"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	SaleDate      time.Time       `json:"sale_date"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string          `json:"id"`
	ProductType   string          `json:"product_type"`
	ProductID     string          `json:"product_id"`
	Quantity      float64         `json:"quantity_kg"`
	PricePerKg    decimal.Decimal `json:"price_per_kg"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	CustomerName  string          `json:"customer_name,omitempty"`
	CustomerPhone string          `json:"customer_phone,omitempty"`
	SaleDate      time.Time       `json:"sale_date"`
	StaffID       string          `json:"staff_id"`
	CreatedAt     time.Time       `json:"created_at"`
}
