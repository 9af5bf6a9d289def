package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto vendible.
const (
	ProductTypeGreen   = "green"
	ProductTypeRoasted = "roasted"
)

// RoastedProductID es el id sintético para ventas de café tostado:
// el tostado no se lleva como inventario separado.
const RoastedProductID = "roasted-coffee"

// Métodos de pago válidos.
const (
	PaymentCash     = "Cash"
	PaymentCard     = "Card"
	PaymentTransfer = "Transfer"
)

// Sale es una transacción de venta, inmutable una vez creada.
// TotalAmount siempre es Quantity x PricePerKg; una venta de café verde
// descuenta el lote referenciado en la misma transacción.
type Sale struct {
	ID            string
	OwnerID       string
	ProductType   string // green | roasted
	ProductID     string // GreenBean.ID si green; RoastedProductID si roasted
	Quantity      float64 // kg
	PricePerKg    decimal.Decimal
	TotalAmount   decimal.Decimal
	PaymentMethod string
	CustomerName  string
	CustomerPhone string
	SaleDate      time.Time
	StaffID       string
	CreatedAt     time.Time
}

// ValidPaymentMethod indica si el método de pago es conocido.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}
