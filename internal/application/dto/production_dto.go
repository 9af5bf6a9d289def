package dto

import "time"

// CreateProductionPlanRequest entrada para planificar un tueste.
type CreateProductionPlanRequest struct {
	GreenBeanID       string    `json:"green_bean_id" validate:"required"`
	ProfileID         string    `json:"profile_id" validate:"required"`
	Date              time.Time `json:"date" validate:"required"`
	PlannedQuantity   float64   `json:"planned_quantity_kg" validate:"required,gt=0"`
	EstimatedDuration int       `json:"estimated_duration_min" validate:"required,gt=0"`
	Priority          string    `json:"priority" validate:"required,oneof=high medium low"`
}

// UpdateProductionPlanRequest entrada para actualizar un plan.
type UpdateProductionPlanRequest struct {
	Date              *time.Time `json:"date"`
	PlannedQuantity   *float64   `json:"planned_quantity_kg" validate:"omitempty,gt=0"`
	EstimatedDuration *int       `json:"estimated_duration_min" validate:"omitempty,gt=0"`
	Priority          *string    `json:"priority" validate:"omitempty,oneof=high medium low"`
	Status            *string    `json:"status" validate:"omitempty,oneof=scheduled in_progress completed delayed"`
}

// ProductionPlanResponse salida de un plan de producción.
type ProductionPlanResponse struct {
	ID                string    `json:"id"`
	GreenBeanID       string    `json:"green_bean_id"`
	ProfileID         string    `json:"profile_id"`
	Date              time.Time `json:"date"`
	PlannedQuantity   float64   `json:"planned_quantity_kg"`
	EstimatedDuration int       `json:"estimated_duration_min"`
	Priority          string    `json:"priority"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WeeklyCapacityResponse capacidad semanal del tostador y su uso planificado.
type WeeklyCapacityResponse struct {
	CapacityMinutes   int     `json:"capacity_minutes"`
	PlannedMinutes    int     `json:"planned_minutes"`
	UtilizationPercent float64 `json:"utilization_percent"`
	Plans             []ProductionPlanResponse `json:"plans"`
}
