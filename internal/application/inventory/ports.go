package inventory

import (
	"context"

	"github.com/beanshub/roastery-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el movimiento de stock y el
// nuevo saldo del lote sean un único commit.
type TxRunner interface {
	RunMovement(ctx context.Context, fn func(
		beanRepo repository.GreenBeanRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
