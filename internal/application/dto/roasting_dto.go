package dto

import "time"

// CreateRoastingProfileRequest entrada para crear un perfil de tueste.
type CreateRoastingProfileRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=200"`
	TemperatureCurve string `json:"temperature_curve"`
	TargetDuration   int    `json:"target_duration_min" validate:"required,gt=0"`
	Notes            string `json:"notes"`
}

// UpdateRoastingProfileRequest entrada para actualizar un perfil.
type UpdateRoastingProfileRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=200"`
	TemperatureCurve *string `json:"temperature_curve"`
	TargetDuration   *int    `json:"target_duration_min" validate:"omitempty,gt=0"`
	Notes            *string `json:"notes"`
}

// RoastingProfileResponse salida de un perfil de tueste.
type RoastingProfileResponse struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TemperatureCurve string    `json:"temperature_curve,omitempty"`
	TargetDuration   int       `json:"target_duration_min"`
	Notes            string    `json:"notes,omitempty"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateRoastingSessionRequest entrada para registrar una sesión de tueste.
// RoastedQuantity cero aplica el rendimiento por defecto del 80%.
type CreateRoastingSessionRequest struct {
	GreenBeanID      string  `json:"green_bean_id" validate:"required"`
	ProfileID        string  `json:"profile_id" validate:"required"`
	GreenBeanQuantity float64 `json:"green_bean_quantity_kg" validate:"required,gt=0"`
	RoastedQuantity  float64 `json:"roasted_quantity_kg" validate:"min=0"`
	RoastDate        time.Time `json:"roast_date"`
	Notes            string  `json:"notes"`
}

// RoastingSessionResponse salida de una sesión de tueste.
type RoastingSessionResponse struct {
	ID                string    `json:"id"`
	GreenBeanID       string    `json:"green_bean_id"`
	ProfileID         string    `json:"profile_id"`
	GreenBeanQuantity float64   `json:"green_bean_quantity_kg"`
	RoastedQuantity   float64   `json:"roasted_quantity_kg"`
	YieldPercent      float64   `json:"yield_percent"`
	RoastDate         time.Time `json:"roast_date"`
	RoasterID         string    `json:"roaster_id"`
	BatchNumber       string    `json:"batch_number"`
	QualityScore      *float64  `json:"quality_score,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateQualityScoreRequest entrada para evaluar una sesión (escala 1-5).
type CreateQualityScoreRequest struct {
	RoastingSessionID string  `json:"roasting_session_id" validate:"required"`
	Appearance        float64 `json:"appearance" validate:"required,min=1,max=5"`
	Aroma             float64 `json:"aroma" validate:"required,min=1,max=5"`
	Flavor            float64 `json:"flavor" validate:"required,min=1,max=5"`
	Acidity           float64 `json:"acidity" validate:"required,min=1,max=5"`
	Body              float64 `json:"body" validate:"required,min=1,max=5"`
	Notes             string  `json:"notes"`
}

// QualityScoreResponse salida de una evaluación de calidad.
type QualityScoreResponse struct {
	ID                string    `json:"id"`
	RoastingSessionID string    `json:"roasting_session_id"`
	Appearance        float64   `json:"appearance"`
	Aroma             float64   `json:"aroma"`
	Flavor            float64   `json:"flavor"`
	Acidity           float64   `json:"acidity"`
	Body              float64   `json:"body"`
	Overall           float64   `json:"overall"`
	Grade             string    `json:"grade"`
	Notes             string    `json:"notes,omitempty"`
	EvaluatedBy       string    `json:"evaluated_by"`
	CreatedAt         time.Time `json:"created_at"`
}
