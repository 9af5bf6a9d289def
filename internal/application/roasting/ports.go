package roasting

import (
	"context"

	"github.com/beanshub/roastery-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el alta de la sesión de tueste
// y el descuento del lote verde sean un único commit.
type TxRunner interface {
	RunRoast(ctx context.Context, fn func(
		beanRepo repository.GreenBeanRepository,
		sessionRepo repository.RoastingSessionRepository,
	) error) error
}
