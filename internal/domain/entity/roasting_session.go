package entity

import "time"

// RoastingSession es un evento de tueste. Se crea de forma atómica junto con el
// descuento del lote de café verde que consume y es inmutable una vez creada.
// Invariante: 0 <= RoastedQuantity <= GreenBeanQuantity.
type RoastingSession struct {
	ID                string
	OwnerID           string
	GreenBeanID       string
	ProfileID         string
	GreenBeanQuantity float64 // kg consumidos
	RoastedQuantity   float64 // kg producidos (por defecto 80% del verde)
	RoastDate         time.Time
	RoasterID         string
	BatchNumber       string // RS-<año>-<token>
	QualityScore      *float64
	Notes             string
	CreatedAt         time.Time
}
