package entity

import "time"

// Prioridades y estados de un plan de producción.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	PlanScheduled  = "scheduled"
	PlanInProgress = "in-progress"
	PlanCompleted  = "completed"
	PlanDelayed    = "delayed"
)

// ProductionPlan es un tueste planificado para una fecha concreta.
// Referencia (sin poseer) un lote de café verde y un perfil de tueste.
type ProductionPlan struct {
	ID                string
	OwnerID           string
	GreenBeanID       string
	ProfileID         string
	Date              time.Time
	PlannedQuantity   float64 // kg de verde a tostar
	EstimatedDuration int     // minutos
	Priority          string  // high, medium, low
	Status            string  // scheduled, in-progress, completed, delayed
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
