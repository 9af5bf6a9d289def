package entity

import "time"

// RoastingProfile es una receta de tueste con nombre.
// TargetDuration siempre es mayor que cero; las sesiones y los planes de
// producción la referencian por id sin ser dueños de ella.
type RoastingProfile struct {
	ID               string
	OwnerID          string
	Name             string
	TemperatureCurve string // descripción libre de la curva
	TargetDuration   int    // minutos
	Notes            string
	CreatedBy        string // UserID del creador
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
