package state

import "sync"

// Listener recibe el estado resultante después de cada acción aplicada.
type Listener func(AppState)

// Unsubscribe cancela una suscripción. Debe invocarse exactamente una vez;
// las invocaciones posteriores son no-ops.
type Unsubscribe func()

// Store posee el único estado mutable de la sesión. Toda mutación pasa por
// Dispatch: las acciones se aplican en orden estricto de llegada y cada una se
// aplica por completo antes de procesar la siguiente.
type Store struct {
	mu        sync.Mutex
	state     AppState
	listeners map[int]Listener
	nextID    int
}

// NewStore crea un store con el estado inicial.
func NewStore() *Store {
	return &Store{
		state:     NewState(),
		listeners: make(map[int]Listener),
	}
}

// Dispatch aplica la acción con el reductor y notifica a los suscriptores con
// el estado resultante. La notificación ocurre fuera del lock para permitir
// que un listener consulte el store.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	applied := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(applied)
	}
}

// State devuelve la instantánea actual (valor, segura de leer).
func (s *Store) State() AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registra un listener y devuelve su función de baja.
func (s *Store) Subscribe(l Listener) Unsubscribe {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}
