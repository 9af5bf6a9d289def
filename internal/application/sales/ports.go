package sales

import (
	"context"

	"github.com/beanshub/roastery-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta de café verde y el
// descuento del lote sean un único commit.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		beanRepo repository.GreenBeanRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
