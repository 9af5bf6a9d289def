package state

import (
	"sync"

	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// CollectionSource abre suscripciones en vivo sobre las colecciones del
// almacén de documentos. Cada notificación entrega la instantánea COMPLETA de
// la colección (no un diff); el orden de entrega es el del proveedor.
// Si una suscripción no puede establecerse, la colección queda en su último
// estado conocido y no se despacha nada.
type CollectionSource interface {
	WatchGreenBeans(ownerID string, fn func([]entity.GreenBean)) (Unsubscribe, error)
	WatchRoastingProfiles(ownerID string, fn func([]entity.RoastingProfile)) (Unsubscribe, error)
	WatchRoastingSessions(ownerID string, fn func([]entity.RoastingSession)) (Unsubscribe, error)
	WatchSales(ownerID string, fn func([]entity.Sale)) (Unsubscribe, error)
	// WatchUsers observa la lista global de usuarios (solo sesiones Admin).
	WatchUsers(fn func([]entity.User)) (Unsubscribe, error)
}

// SyncBridge mantiene como máximo una suscripción viva por colección y usuario.
// Cada instantánea recibida se despacha como reemplazo total de la colección:
// la última instantánea siempre gana, sin reconciliación incremental.
type SyncBridge struct {
	store  *Store
	source CollectionSource
	log    *logger.Logger

	mu     sync.Mutex
	unsubs []Unsubscribe
	active bool
}

// NewSyncBridge construye el puente de sincronización.
func NewSyncBridge(store *Store, source CollectionSource, log *logger.Logger) *SyncBridge {
	return &SyncBridge{store: store, source: source, log: log}
}

// Start abre las suscripciones para el usuario dado: las cuatro colecciones
// propias y, solo si es Admin, la lista global de usuarios. Es no-op si el
// puente ya está activo.
func (b *SyncBridge) Start(user *entity.User) {
	if user == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active {
		return
	}
	b.active = true

	b.open("green_beans", func() (Unsubscribe, error) {
		return b.source.WatchGreenBeans(user.ID, func(beans []entity.GreenBean) {
			b.store.Dispatch(SetGreenBeans{Beans: beans})
		})
	})
	b.open("roasting_profiles", func() (Unsubscribe, error) {
		return b.source.WatchRoastingProfiles(user.ID, func(profiles []entity.RoastingProfile) {
			b.store.Dispatch(SetRoastingProfiles{Profiles: profiles})
		})
	})
	b.open("roasting_sessions", func() (Unsubscribe, error) {
		return b.source.WatchRoastingSessions(user.ID, func(sessions []entity.RoastingSession) {
			b.store.Dispatch(SetRoastingSessions{Sessions: sessions})
		})
	})
	b.open("sales", func() (Unsubscribe, error) {
		return b.source.WatchSales(user.ID, func(sales []entity.Sale) {
			b.store.Dispatch(SetSales{Sales: sales})
		})
	})
	if user.Role == entity.RoleAdmin {
		b.open("users", func() (Unsubscribe, error) {
			return b.source.WatchUsers(func(users []entity.User) {
				b.store.Dispatch(SetUsers{Users: users})
			})
		})
	}
}

// open registra la baja de la suscripción; un fallo solo se registra en el log
// (no se reintenta aquí, es responsabilidad del proveedor).
func (b *SyncBridge) open(name string, subscribe func() (Unsubscribe, error)) {
	unsub, err := subscribe()
	if err != nil {
		if b.log != nil {
			b.log.Warn().Err(err).Str("collection", name).Msg("no se pudo abrir la suscripción")
		}
		return
	}
	b.unsubs = append(b.unsubs, unsub)
}

// Stop da de baja todas las suscripciones abiertas, cada una exactamente una
// vez. Debe invocarse antes de limpiar el estado para garantizar que ningún
// callback posterior mute un store de una sesión ya cerrada.
func (b *SyncBridge) Stop() {
	b.mu.Lock()
	unsubs := b.unsubs
	b.unsubs = nil
	b.active = false
	b.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
}
