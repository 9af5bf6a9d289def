package entity

import "time"

// Tipos de movimiento de stock sobre un lote de café verde.
const (
	MovementTypeIn     = "in"     // entrada manual
	MovementTypeOut    = "out"    // salida manual
	MovementTypeAdjust = "adjust" // ajuste (+/-)
)

// StockMovement registra un movimiento manual sobre un GreenBean.
// Quantity es positiva para entradas y negativa para salidas; alimenta
// las métricas de rotación y consumo.
type StockMovement struct {
	ID          string
	OwnerID     string
	GreenBeanID string
	Type        string  // in, out, adjust
	Quantity    float64 // kg, con signo
	Reason      string
	CreatedAt   time.Time
	CreatedBy   string // UserID
}
