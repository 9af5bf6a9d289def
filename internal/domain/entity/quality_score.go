package entity

import "time"

// QualityScore es la evaluación sensorial de una sesión de tueste.
// Cada atributo se puntúa de 1 a 5; Overall es el promedio de los cinco.
type QualityScore struct {
	ID                string
	OwnerID           string
	RoastingSessionID string
	Appearance        float64
	Aroma             float64
	Flavor            float64
	Acidity           float64
	Body              float64
	Overall           float64
	Notes             string
	EvaluatedBy       string // UserID
	CreatedAt         time.Time
}
