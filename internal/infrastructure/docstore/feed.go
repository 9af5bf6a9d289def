// Package docstore implementa el contrato de suscripción del almacén de
// documentos: un feed de cambios en proceso y un observador que, en cada
// cambio, relee la instantánea completa de la colección y la entrega a los
// suscriptores (reemplazo total, sin diffs).
package docstore

import (
	"sync"

	"github.com/beanshub/roastery-api/internal/application/ports"
)

var _ ports.ChangeFeed = (*Feed)(nil)

type feedKey struct {
	collection string
	ownerID    string
}

// Feed es el hub de cambios en proceso. Los casos de uso publican tras cada
// commit; los observadores registrados para (colección, dueño) reciben el
// aviso de forma síncrona, en el orden de publicación.
type Feed struct {
	mu     sync.Mutex
	subs   map[feedKey]map[int]func()
	nextID int
}

// NewFeed construye el hub.
func NewFeed() *Feed {
	return &Feed{subs: make(map[feedKey]map[int]func())}
}

// CollectionChanged avisa a todos los suscriptores de (collection, ownerID).
func (f *Feed) CollectionChanged(collection, ownerID string) {
	f.mu.Lock()
	var fns []func()
	for _, fn := range f.subs[feedKey{collection, ownerID}] {
		fns = append(fns, fn)
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// subscribe registra un callback y devuelve su baja (exactamente-una-vez).
func (f *Feed) subscribe(collection, ownerID string, fn func()) func() {
	key := feedKey{collection, ownerID}
	f.mu.Lock()
	if f.subs[key] == nil {
		f.subs[key] = make(map[int]func())
	}
	id := f.nextID
	f.nextID++
	f.subs[key][id] = fn
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs[key], id)
			f.mu.Unlock()
		})
	}
}
