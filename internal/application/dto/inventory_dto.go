package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGreenBeanRequest entrada para registrar un lote de café verde.
type CreateGreenBeanRequest struct {
	SupplierName       string          `json:"supplier_name" validate:"required,min=1,max=200"`
	Variety            string          `json:"variety" validate:"required,min=1,max=100"`
	Origin             string          `json:"origin" validate:"required,min=1,max=100"`
	Quantity           float64         `json:"quantity_kg" validate:"required,gt=0"`
	PurchasePricePerKg decimal.Decimal `json:"purchase_price_per_kg"`
	EntryDate          time.Time       `json:"entry_date"`
	LowStockThreshold  float64         `json:"low_stock_threshold_kg" validate:"min=0"`
}

// UpdateGreenBeanRequest entrada para actualizar un lote (campos opcionales).
// La cantidad no se edita aquí: pasa por movimientos de stock.
type UpdateGreenBeanRequest struct {
	SupplierName       *string          `json:"supplier_name" validate:"omitempty,min=1,max=200"`
	Variety            *string          `json:"variety" validate:"omitempty,min=1,max=100"`
	Origin             *string          `json:"origin" validate:"omitempty,min=1,max=100"`
	PurchasePricePerKg *decimal.Decimal `json:"purchase_price_per_kg"`
	LowStockThreshold  *float64         `json:"low_stock_threshold_kg" validate:"omitempty,min=0"`
}

// GreenBeanResponse salida de un lote de café verde.
type GreenBeanResponse struct {
	ID                 string          `json:"id"`
	SupplierName       string          `json:"supplier_name"`
	Variety            string          `json:"variety"`
	Origin             string          `json:"origin"`
	Quantity           float64         `json:"quantity_kg"`
	PurchasePricePerKg decimal.Decimal `json:"purchase_price_per_kg"`
	EntryDate          time.Time       `json:"entry_date"`
	BatchNumber        string          `json:"batch_number"`
	LowStockThreshold  float64         `json:"low_stock_threshold_kg"`
	StockLevel         string          `json:"stock_level"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// RegisterMovementRequest entrada para registrar un movimiento de stock.
// Quantity lleva signo: positiva entra, negativa sale.
type RegisterMovementRequest struct {
	GreenBeanID string  `json:"green_bean_id" validate:"required"`
	Type        string  `json:"type" validate:"required,oneof=in out adjust"`
	Quantity    float64 `json:"quantity_kg" validate:"required"`
	Reason      string  `json:"reason" validate:"required,min=1,max=300"`
}

// StockMovementResponse salida de un movimiento de stock.
type StockMovementResponse struct {
	ID          string    `json:"id"`
	GreenBeanID string    `json:"green_bean_id"`
	Type        string    `json:"type"`
	Quantity    float64   `json:"quantity_kg"`
	Reason      string    `json:"reason"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
