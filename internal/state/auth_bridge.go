package state

import (
	"sync"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

// AuthBridge traduce las notificaciones de cambio de sesión del proveedor de
// identidad en exactamente un SetUser por cambio, y gobierna el flag
// AuthLoading: activo desde el arranque hasta la primera notificación
// (usuario o nil), desactivado el resto de la sesión.
type AuthBridge struct {
	store *Store
	once  sync.Once
}

// NewAuthBridge construye el puente sobre un store cuyo estado inicial ya
// tiene AuthLoading en true.
func NewAuthBridge(store *Store) *AuthBridge {
	return &AuthBridge{store: store}
}

// HandleSessionChange aplica un cambio de sesión: despacha el perfil resuelto
// (o nil si la sesión/perfil no se pudo resolver). Tras la primera llamada el
// usuario actual nunca queda indeterminado con AuthLoading en false.
func (b *AuthBridge) HandleSessionChange(user *entity.User) {
	b.store.Dispatch(SetUser{User: user})
	b.once.Do(func() {
		b.store.Dispatch(SetAuthLoading{Loading: false})
	})
}
