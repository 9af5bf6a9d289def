package docstore

import (
	"fmt"

	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/state"
)

var _ state.CollectionSource = (*Watcher)(nil)

// Watcher implementa state.CollectionSource sobre los repositorios y el feed:
// entrega una instantánea inicial al suscribirse y, en cada cambio publicado,
// relee la colección completa y la vuelve a entregar. La última instantánea
// siempre gana.
type Watcher struct {
	feed     *Feed
	users    repository.UserRepository
	beans    repository.GreenBeanRepository
	profiles repository.RoastingProfileRepository
	sessions repository.RoastingSessionRepository
	sales    repository.SaleRepository
}

// NewWatcher construye el observador de colecciones.
func NewWatcher(
	feed *Feed,
	users repository.UserRepository,
	beans repository.GreenBeanRepository,
	profiles repository.RoastingProfileRepository,
	sessions repository.RoastingSessionRepository,
	sales repository.SaleRepository,
) *Watcher {
	return &Watcher{
		feed:     feed,
		users:    users,
		beans:    beans,
		profiles: profiles,
		sessions: sessions,
		sales:    sales,
	}
}

// WatchGreenBeans abre la suscripción a los lotes del dueño.
func (w *Watcher) WatchGreenBeans(ownerID string, fn func([]entity.GreenBean)) (state.Unsubscribe, error) {
	read := func() ([]entity.GreenBean, error) {
		list, err := w.beans.ListByOwner(ownerID)
		if err != nil {
			return nil, err
		}
		return deref(list), nil
	}
	return watch(w.feed, ports.CollectionGreenBeans, ownerID, read, fn)
}

// WatchRoastingProfiles abre la suscripción a los perfiles del dueño.
func (w *Watcher) WatchRoastingProfiles(ownerID string, fn func([]entity.RoastingProfile)) (state.Unsubscribe, error) {
	read := func() ([]entity.RoastingProfile, error) {
		list, err := w.profiles.ListByOwner(ownerID)
		if err != nil {
			return nil, err
		}
		return deref(list), nil
	}
	return watch(w.feed, ports.CollectionRoastingProfiles, ownerID, read, fn)
}

// WatchRoastingSessions abre la suscripción a las sesiones del dueño.
func (w *Watcher) WatchRoastingSessions(ownerID string, fn func([]entity.RoastingSession)) (state.Unsubscribe, error) {
	read := func() ([]entity.RoastingSession, error) {
		list, err := w.sessions.ListByOwner(ownerID)
		if err != nil {
			return nil, err
		}
		return deref(list), nil
	}
	return watch(w.feed, ports.CollectionRoastingSessions, ownerID, read, fn)
}

// WatchSales abre la suscripción a las ventas del dueño.
func (w *Watcher) WatchSales(ownerID string, fn func([]entity.Sale)) (state.Unsubscribe, error) {
	read := func() ([]entity.Sale, error) {
		list, err := w.sales.ListByOwner(ownerID)
		if err != nil {
			return nil, err
		}
		return deref(list), nil
	}
	return watch(w.feed, ports.CollectionSales, ownerID, read, fn)
}

// WatchUsers abre la suscripción a la lista global de usuarios (solo Admin).
func (w *Watcher) WatchUsers(fn func([]entity.User)) (state.Unsubscribe, error) {
	read := func() ([]entity.User, error) {
		list, err := w.users.List(1000, 0)
		if err != nil {
			return nil, err
		}
		return deref(list), nil
	}
	return watch(w.feed, ports.CollectionUsers, "", read, fn)
}

// watch entrega la instantánea inicial y reengancha la relectura al feed.
// Si la lectura inicial falla, la suscripción no se establece. Un fallo de
// relectura posterior no entrega nada: la colección queda en su último estado.
func watch[T any](feed *Feed, collection, ownerID string, read func() ([]T, error), fn func([]T)) (state.Unsubscribe, error) {
	initial, err := read()
	if err != nil {
		return nil, fmt.Errorf("instantánea inicial de %s: %w", collection, err)
	}
	fn(initial)

	cancel := feed.subscribe(collection, ownerID, func() {
		snapshot, err := read()
		if err != nil {
			return
		}
		fn(snapshot)
	})
	return state.Unsubscribe(cancel), nil
}

func deref[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out
}
