package state

import (
	"sync"

	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// Session agrupa el store de un usuario con sus puentes.
type Session struct {
	Store *Store
	auth  *AuthBridge
	sync  *SyncBridge
}

// Manager posee las sesiones vivas: una por usuario autenticado. Hace el papel
// del árbol de providers de la SPA original: al entrar un usuario crea el store
// y abre los puentes; al salir los desmonta antes de limpiar el estado.
type Manager struct {
	source CollectionSource
	log    *logger.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager construye el gestor de sesiones.
func NewManager(source CollectionSource, log *logger.Logger) *Manager {
	return &Manager{
		source:   source,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// StartSession crea (o devuelve) la sesión viva del usuario: store nuevo,
// SetUser vía el puente de auth y suscripciones de colección abiertas.
func (m *Manager) StartSession(user *entity.User) *Session {
	if user == nil {
		return nil
	}
	m.mu.Lock()
	if existing, ok := m.sessions[user.ID]; ok {
		m.mu.Unlock()
		// Login repetido: refresca el perfil en el store existente.
		existing.auth.HandleSessionChange(user)
		return existing
	}
	session := &Session{Store: NewStore()}
	session.auth = NewAuthBridge(session.Store)
	session.sync = NewSyncBridge(session.Store, m.source, m.log)
	m.sessions[user.ID] = session
	m.mu.Unlock()

	session.auth.HandleSessionChange(user)
	session.sync.Start(user)
	return session
}

// EndSession cierra la sesión del usuario: primero se desmontan las
// suscripciones, después se limpia el estado. Orden obligatorio para que
// ninguna instantánea tardía caiga en una sesión muerta.
func (m *Manager) EndSession(userID string) {
	m.mu.Lock()
	session, ok := m.sessions[userID]
	if ok {
		delete(m.sessions, userID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	session.sync.Stop()
	session.auth.HandleSessionChange(nil)
}

// Session devuelve la sesión viva del usuario, o nil si no existe.
func (m *Manager) Session(userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID]
}

// Notify inserta una notificación en la sesión del usuario, si está viva.
// Las notificaciones son efímeras: mueren con la sesión.
func (m *Manager) Notify(userID string, n entity.Notification) {
	session := m.Session(userID)
	if session == nil {
		return
	}
	session.Store.Dispatch(AddNotification{Notification: n})
}

// MarkRead marca una notificación como leída (idempotente).
func (m *Manager) MarkRead(userID, notificationID string) {
	session := m.Session(userID)
	if session == nil {
		return
	}
	session.Store.Dispatch(MarkNotificationRead{ID: notificationID})
}
