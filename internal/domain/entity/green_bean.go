package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GreenBean representa un lote de café verde comprado.
// Quantity es el saldo vivo en kg: lo consumen las sesiones de tueste,
// las ventas de café verde y los ajustes manuales. Nunca baja de cero.
type GreenBean struct {
	ID                 string
	OwnerID            string // usuario dueño del lote
	SupplierName       string
	Variety            string
	Origin             string
	Quantity           float64 // kg
	PurchasePricePerKg decimal.Decimal
	EntryDate          time.Time
	BatchNumber        string // GB-<año>-<token>
	LowStockThreshold  float64 // kg
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsLowStock indica si el lote está en o por debajo de su umbral mínimo.
func (b GreenBean) IsLowStock() bool {
	return b.Quantity <= b.LowStockThreshold
}
