package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
)

var _ repository.GreenBeanRepository = (*GreenBeanRepo)(nil)

// GreenBeanRepo implementación del puerto GreenBeanRepository sobre PostgreSQL.
type GreenBeanRepo struct {
	db querier
}

// NewGreenBeanRepository construye el adaptador de persistencia para lotes.
func NewGreenBeanRepository(db querier) *GreenBeanRepo {
	return &GreenBeanRepo{db: db}
}

const beanColumns = `id, owner_id, supplier_name, variety, origin, quantity,
	purchase_price_per_kg, entry_date, batch_number, low_stock_threshold, created_at, updated_at`

// Create persiste un nuevo lote de café verde.
func (r *GreenBeanRepo) Create(bean *entity.GreenBean) error {
	query := `
		INSERT INTO green_beans (` + beanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		bean.ID, bean.OwnerID, bean.SupplierName, bean.Variety, bean.Origin, bean.Quantity,
		bean.PurchasePricePerKg, bean.EntryDate, bean.BatchNumber, bean.LowStockThreshold,
		bean.CreatedAt, bean.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert green bean: %w", err)
	}
	return nil
}

// GetByID obtiene un lote por id. Devuelve (nil, nil) si no existe.
func (r *GreenBeanRepo) GetByID(id string) (*entity.GreenBean, error) {
	query := `SELECT ` + beanColumns + ` FROM green_beans WHERE id = $1`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "get green bean")
}

// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE). Solo tiene
// sentido dentro de una transacción.
func (r *GreenBeanRepo) GetForUpdate(id string) (*entity.GreenBean, error) {
	query := `SELECT ` + beanColumns + ` FROM green_beans WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.db.QueryRow(context.Background(), query, id), "lock green bean")
}

// ListByOwner devuelve los lotes del dueño en orden de entrada.
func (r *GreenBeanRepo) ListByOwner(ownerID string) ([]*entity.GreenBean, error) {
	query := `SELECT ` + beanColumns + ` FROM green_beans WHERE owner_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list green beans: %w", err)
	}
	defer rows.Close()

	var beans []*entity.GreenBean
	for rows.Next() {
		b, err := scanBean(rows)
		if err != nil {
			return nil, fmt.Errorf("scan green bean: %w", err)
		}
		beans = append(beans, b)
	}
	return beans, rows.Err()
}

// Update reemplaza los campos editables del lote.
func (r *GreenBeanRepo) Update(bean *entity.GreenBean) error {
	query := `
		UPDATE green_beans
		SET supplier_name = $2, variety = $3, origin = $4, quantity = $5,
		    purchase_price_per_kg = $6, entry_date = $7, low_stock_threshold = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		bean.ID, bean.SupplierName, bean.Variety, bean.Origin, bean.Quantity,
		bean.PurchasePricePerKg, bean.EntryDate, bean.LowStockThreshold, bean.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update green bean: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity reemplaza el saldo del lote. Pensado para usarse con la fila
// ya bloqueada dentro de una transacción.
func (r *GreenBeanRepo) UpdateQuantity(id string, quantity float64) error {
	query := `UPDATE green_beans SET quantity = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query, id, quantity)
	if err != nil {
		return fmt.Errorf("update green bean quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un lote por id.
func (r *GreenBeanRepo) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM green_beans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete green bean: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GreenBeanRepo) scanOne(row pgx.Row, op string) (*entity.GreenBean, error) {
	b, err := scanBean(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return b, nil
}

func scanBean(row pgx.Row) (*entity.GreenBean, error) {
	var b entity.GreenBean
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.SupplierName, &b.Variety, &b.Origin, &b.Quantity,
		&b.PurchasePricePerKg, &b.EntryDate, &b.BatchNumber, &b.LowStockThreshold,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
