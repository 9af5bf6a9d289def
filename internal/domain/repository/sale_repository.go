package repository

import (
	"time"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas (inmutables).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByOwner(ownerID string) ([]*entity.Sale, error)
	// ListByDateRange devuelve las ventas del dueño con SaleDate en [start, end],
	// ambos extremos incluidos, ordenadas de más reciente a más antigua.
	ListByDateRange(ownerID string, start, end time.Time) ([]*entity.Sale, error)
}

// StockMovementRepository define el puerto de persistencia para movimientos manuales.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByOwner(ownerID string) ([]*entity.StockMovement, error)
	ListByGreenBean(greenBeanID string) ([]*entity.StockMovement, error)
}

// ProductionPlanRepository define el puerto de persistencia para planes de producción.
type ProductionPlanRepository interface {
	Create(plan *entity.ProductionPlan) error
	GetByID(id string) (*entity.ProductionPlan, error)
	ListByOwner(ownerID string) ([]*entity.ProductionPlan, error)
	ListByDateRange(ownerID string, start, end time.Time) ([]*entity.ProductionPlan, error)
	Update(plan *entity.ProductionPlan) error
	Delete(id string) error
}
