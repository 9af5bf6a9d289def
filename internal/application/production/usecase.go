// Package production implementa la planificación semanal de tuestes y el
// cálculo de capacidad del tostador.
package production

import (
	"time"

	"github.com/google/uuid"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
)

// Capacidad semanal del tostador: 8 horas diarias, 6 días por semana.
const (
	hoursPerDay    = 8
	daysPerWeek    = 6
	WeeklyCapacity = hoursPerDay * 60 * daysPerWeek
)

// ProductionUseCase casos de uso de planificación de producción.
type ProductionUseCase struct {
	planRepo repository.ProductionPlanRepository
	beanRepo repository.GreenBeanRepository
}

// NewProductionUseCase construye el caso de uso de producción.
func NewProductionUseCase(
	planRepo repository.ProductionPlanRepository,
	beanRepo repository.GreenBeanRepository,
) *ProductionUseCase {
	return &ProductionUseCase{planRepo: planRepo, beanRepo: beanRepo}
}

// CreatePlan agenda un tueste. El lote debe existir y pertenecer al dueño.
func (uc *ProductionUseCase) CreatePlan(ownerID string, in dto.CreateProductionPlanRequest) (*dto.ProductionPlanResponse, error) {
	if in.PlannedQuantity <= 0 || in.EstimatedDuration <= 0 || in.Date.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	switch in.Priority {
	case entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow:
	default:
		return nil, domain.ErrInvalidInput
	}
	bean, err := uc.beanRepo.GetByID(in.GreenBeanID)
	if err != nil {
		return nil, err
	}
	if bean == nil || bean.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	plan := &entity.ProductionPlan{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		GreenBeanID:       in.GreenBeanID,
		ProfileID:         in.ProfileID,
		Date:              in.Date,
		PlannedQuantity:   in.PlannedQuantity,
		EstimatedDuration: in.EstimatedDuration,
		Priority:          in.Priority,
		Status:            entity.PlanScheduled,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.planRepo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// ListPlans devuelve los planes del dueño.
func (uc *ProductionUseCase) ListPlans(ownerID string) ([]dto.ProductionPlanResponse, error) {
	plans, err := uc.planRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// UpdatePlan actualiza fecha, cantidad, duración, prioridad o estado.
func (uc *ProductionUseCase) UpdatePlan(ownerID, id string, in dto.UpdateProductionPlanRequest) (*dto.ProductionPlanResponse, error) {
	plan, err := uc.ownedPlan(ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.Date != nil {
		plan.Date = *in.Date
	}
	if in.PlannedQuantity != nil {
		if *in.PlannedQuantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		plan.PlannedQuantity = *in.PlannedQuantity
	}
	if in.EstimatedDuration != nil {
		if *in.EstimatedDuration <= 0 {
			return nil, domain.ErrInvalidInput
		}
		plan.EstimatedDuration = *in.EstimatedDuration
	}
	if in.Priority != nil {
		switch *in.Priority {
		case entity.PriorityHigh, entity.PriorityMedium, entity.PriorityLow:
			plan.Priority = *in.Priority
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status != nil {
		switch *in.Status {
		case entity.PlanScheduled, entity.PlanInProgress, entity.PlanCompleted, entity.PlanDelayed:
			plan.Status = *in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	plan.UpdatedAt = time.Now()
	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// DeletePlan elimina un plan del dueño.
func (uc *ProductionUseCase) DeletePlan(ownerID, id string) error {
	if _, err := uc.ownedPlan(ownerID, id); err != nil {
		return err
	}
	return uc.planRepo.Delete(id)
}

// WeekCapacity devuelve los planes de la semana de ref (lunes a domingo) y
// el uso de la capacidad del tostador.
func (uc *ProductionUseCase) WeekCapacity(ownerID string, ref time.Time) (*dto.WeeklyCapacityResponse, error) {
	start := weekStart(ref)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	plans, err := uc.planRepo.ListByDateRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}

	out := &dto.WeeklyCapacityResponse{
		CapacityMinutes: WeeklyCapacity,
		Plans:           make([]dto.ProductionPlanResponse, 0, len(plans)),
	}
	for _, p := range plans {
		out.PlannedMinutes += p.EstimatedDuration
		out.Plans = append(out.Plans, *toPlanResponse(p))
	}
	out.UtilizationPercent = Utilization(out.PlannedMinutes)
	return out, nil
}

// Utilization porcentaje de la capacidad semanal cubierto por los minutos
// planificados. Puede superar 100 si la semana está sobrevendida.
func Utilization(plannedMinutes int) float64 {
	return float64(plannedMinutes) / float64(WeeklyCapacity) * 100
}

func (uc *ProductionUseCase) ownedPlan(ownerID, id string) (*entity.ProductionPlan, error) {
	plan, err := uc.planRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if plan == nil || plan.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return plan, nil
}

// weekStart devuelve el lunes 00:00 de la semana de t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func toPlanResponse(p *entity.ProductionPlan) *dto.ProductionPlanResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductionPlanResponse{
		ID:                p.ID,
		GreenBeanID:       p.GreenBeanID,
		ProfileID:         p.ProfileID,
		Date:              p.Date,
		PlannedQuantity:   p.PlannedQuantity,
		EstimatedDuration: p.EstimatedDuration,
		Priority:          p.Priority,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
