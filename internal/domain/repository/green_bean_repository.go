package repository

import "github.com/beanshub/roastery-api/internal/domain/entity"

// GreenBeanRepository define el puerto de persistencia para lotes de café verde.
// Todas las lecturas van filtradas por dueño.
type GreenBeanRepository interface {
	Create(bean *entity.GreenBean) error
	GetByID(id string) (*entity.GreenBean, error)
	ListByOwner(ownerID string) ([]*entity.GreenBean, error)
	Update(bean *entity.GreenBean) error
	Delete(id string) error
	// GetForUpdate bloquea la fila del lote (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(id string) (*entity.GreenBean, error)
	// UpdateQuantity reemplaza el saldo del lote (usado dentro de transacciones).
	UpdateQuantity(id string, quantity float64) error
}
