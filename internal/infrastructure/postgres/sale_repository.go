package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository           = (*SaleRepo)(nil)
	_ repository.StockMovementRepository  = (*StockMovementRepo)(nil)
	_ repository.ProductionPlanRepository = (*ProductionPlanRepo)(nil)
)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
// Las ventas son inmutables: solo alta y lectura.
type SaleRepo struct {
	db querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db querier) *SaleRepo {
	return &SaleRepo{db: db}
}

const saleColumns = `id, owner_id, product_type, product_id, quantity, price_per_kg,
	total_amount, payment_method, customer_name, customer_phone, sale_date, staff_id, created_at`

// Create persiste una venta.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.OwnerID, s.ProductType, s.ProductID, s.Quantity, s.PricePerKg,
		s.TotalAmount, s.PaymentMethod, s.CustomerName, s.CustomerPhone, s.SaleDate,
		s.StaffID, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por id. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.OwnerID, &s.ProductType, &s.ProductID, &s.Quantity, &s.PricePerKg,
		&s.TotalAmount, &s.PaymentMethod, &s.CustomerName, &s.CustomerPhone, &s.SaleDate,
		&s.StaffID, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByOwner devuelve las ventas del dueño, la más reciente primero.
func (r *SaleRepo) ListByOwner(ownerID string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE owner_id = $1 ORDER BY sale_date DESC`
	return r.list(query, ownerID)
}

// ListByDateRange devuelve las ventas con sale_date en [start, end] inclusive.
func (r *SaleRepo) ListByDateRange(ownerID string, start, end time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
		WHERE owner_id = $1 AND sale_date >= $2 AND sale_date <= $3
		ORDER BY sale_date DESC`
	return r.list(query, ownerID, start, end)
}

func (r *SaleRepo) list(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.ProductType, &s.ProductID, &s.Quantity, &s.PricePerKg,
			&s.TotalAmount, &s.PaymentMethod, &s.CustomerName, &s.CustomerPhone, &s.SaleDate,
			&s.StaffID, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}

// StockMovementRepo implementación del puerto StockMovementRepository.
type StockMovementRepo struct {
	db querier
}

// NewStockMovementRepository construye el adaptador para movimientos manuales.
func NewStockMovementRepository(db querier) *StockMovementRepo {
	return &StockMovementRepo{db: db}
}

const movementColumns = `id, owner_id, green_bean_id, type, quantity, reason, created_at, created_by`

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		m.ID, m.OwnerID, m.GreenBeanID, m.Type, m.Quantity, m.Reason, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByOwner devuelve los movimientos del dueño, el más reciente primero.
func (r *StockMovementRepo) ListByOwner(ownerID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(query, ownerID)
}

// ListByGreenBean devuelve los movimientos de un lote.
func (r *StockMovementRepo) ListByGreenBean(greenBeanID string) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE green_bean_id = $1 ORDER BY created_at DESC`
	return r.list(query, greenBeanID)
}

func (r *StockMovementRepo) list(query string, arg any) ([]*entity.StockMovement, error) {
	rows, err := r.db.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()

	var movements []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.OwnerID, &m.GreenBeanID, &m.Type, &m.Quantity, &m.Reason,
			&m.CreatedAt, &m.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}

// ProductionPlanRepo implementación del puerto ProductionPlanRepository.
type ProductionPlanRepo struct {
	db querier
}

// NewProductionPlanRepository construye el adaptador para planes de producción.
func NewProductionPlanRepository(db querier) *ProductionPlanRepo {
	return &ProductionPlanRepo{db: db}
}

const planColumns = `id, owner_id, green_bean_id, profile_id, date, planned_quantity,
	estimated_duration, priority, status, created_at, updated_at`

// Create persiste un plan de producción.
func (r *ProductionPlanRepo) Create(p *entity.ProductionPlan) error {
	query := `
		INSERT INTO production_plans (` + planColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.OwnerID, p.GreenBeanID, p.ProfileID, p.Date, p.PlannedQuantity,
		p.EstimatedDuration, p.Priority, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production plan: %w", err)
	}
	return nil
}

// GetByID obtiene un plan por id. Devuelve (nil, nil) si no existe.
func (r *ProductionPlanRepo) GetByID(id string) (*entity.ProductionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM production_plans WHERE id = $1`
	var p entity.ProductionPlan
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.GreenBeanID, &p.ProfileID, &p.Date, &p.PlannedQuantity,
		&p.EstimatedDuration, &p.Priority, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production plan: %w", err)
	}
	return &p, nil
}

// ListByOwner devuelve los planes del dueño ordenados por fecha.
func (r *ProductionPlanRepo) ListByOwner(ownerID string) ([]*entity.ProductionPlan, error) {
	query := `SELECT ` + planColumns + ` FROM production_plans WHERE owner_id = $1 ORDER BY date ASC`
	return r.list(query, ownerID)
}

// ListByDateRange devuelve los planes con fecha en [start, end] inclusive.
func (r *ProductionPlanRepo) ListByDateRange(ownerID string, start, end time.Time) ([]*entity.ProductionPlan, error) {
	query := `
		SELECT ` + planColumns + `
		FROM production_plans
		WHERE owner_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC`
	return r.list(query, ownerID, start, end)
}

// Update reemplaza los campos editables del plan.
func (r *ProductionPlanRepo) Update(p *entity.ProductionPlan) error {
	query := `
		UPDATE production_plans
		SET green_bean_id = $2, profile_id = $3, date = $4, planned_quantity = $5,
		    estimated_duration = $6, priority = $7, status = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		p.ID, p.GreenBeanID, p.ProfileID, p.Date, p.PlannedQuantity,
		p.EstimatedDuration, p.Priority, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un plan por id.
func (r *ProductionPlanRepo) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM production_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductionPlanRepo) list(query string, args ...any) ([]*entity.ProductionPlan, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list production plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.ProductionPlan
	for rows.Next() {
		var p entity.ProductionPlan
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.GreenBeanID, &p.ProfileID, &p.Date, &p.PlannedQuantity,
			&p.EstimatedDuration, &p.Priority, &p.Status, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan production plan: %w", err)
		}
		plans = append(plans, &p)
	}
	return plans, rows.Err()
}
