package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

// fakeSource implementa CollectionSource en memoria para los tests: guarda los
// callbacks y permite empujar instantáneas a mano.
type fakeSource struct {
	beansFn    func([]entity.GreenBean)
	profilesFn func([]entity.RoastingProfile)
	sessionsFn func([]entity.RoastingSession)
	salesFn    func([]entity.Sale)
	usersFn    func([]entity.User)

	unsubscribes map[string]int
	failSales    bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{unsubscribes: make(map[string]int)}
}

func (f *fakeSource) WatchGreenBeans(_ string, fn func([]entity.GreenBean)) (Unsubscribe, error) {
	f.beansFn = fn
	return func() { f.unsubscribes["green_beans"]++; f.beansFn = nil }, nil
}

func (f *fakeSource) WatchRoastingProfiles(_ string, fn func([]entity.RoastingProfile)) (Unsubscribe, error) {
	f.profilesFn = fn
	return func() { f.unsubscribes["roasting_profiles"]++; f.profilesFn = nil }, nil
}

func (f *fakeSource) WatchRoastingSessions(_ string, fn func([]entity.RoastingSession)) (Unsubscribe, error) {
	f.sessionsFn = fn
	return func() { f.unsubscribes["roasting_sessions"]++; f.sessionsFn = nil }, nil
}

func (f *fakeSource) WatchSales(_ string, fn func([]entity.Sale)) (Unsubscribe, error) {
	if f.failSales {
		return nil, errors.New("suscripción rechazada")
	}
	f.salesFn = fn
	return func() { f.unsubscribes["sales"]++; f.salesFn = nil }, nil
}

func (f *fakeSource) WatchUsers(fn func([]entity.User)) (Unsubscribe, error) {
	f.usersFn = fn
	return func() { f.unsubscribes["users"]++; f.usersFn = nil }, nil
}

func TestAuthBridge_LoadingSoloHastaLaPrimeraNotificacion(t *testing.T) {
	store := NewStore()
	bridge := NewAuthBridge(store)

	assert.True(t, store.State().AuthLoading, "loading activo antes de la primera notificación")

	bridge.HandleSessionChange(nil)
	s := store.State()
	assert.False(t, s.AuthLoading)
	assert.Nil(t, s.CurrentUser, "sin sesión el usuario queda resuelto a nil, no indeterminado")

	u := testUser("u1", entity.RoleStaff)
	bridge.HandleSessionChange(&u)
	s = store.State()
	assert.False(t, s.AuthLoading)
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, "u1", s.CurrentUser.ID)
}

// Un Staff abre cuatro suscripciones; la lista global de usuarios queda fuera.
func TestSyncBridge_StaffNoObservaUsuarios(t *testing.T) {
	store := NewStore()
	source := newFakeSource()
	bridge := NewSyncBridge(store, source, nil)

	u := testUser("u1", entity.RoleStaff)
	bridge.Start(&u)

	assert.NotNil(t, source.beansFn)
	assert.NotNil(t, source.profilesFn)
	assert.NotNil(t, source.sessionsFn)
	assert.NotNil(t, source.salesFn)
	assert.Nil(t, source.usersFn, "solo Admin observa la lista de usuarios")
}

func TestSyncBridge_SnapshotReemplazaLaColeccion(t *testing.T) {
	store := NewStore()
	source := newFakeSource()
	bridge := NewSyncBridge(store, source, nil)

	admin := testUser("u1", entity.RoleAdmin)
	bridge.Start(&admin)
	require.NotNil(t, source.usersFn, "Admin observa la lista de usuarios")

	source.beansFn([]entity.GreenBean{testBean("b1", 500), testBean("b2", 200)})
	assert.Len(t, store.State().GreenBeans, 2)

	// La siguiente instantánea gana por completo: no hay merge incremental.
	source.beansFn([]entity.GreenBean{testBean("b2", 180)})
	beans := store.State().GreenBeans
	require.Len(t, beans, 1)
	assert.Equal(t, "b2", beans[0].ID)
	assert.Equal(t, 180.0, beans[0].Quantity)
}

// Stop da de baja cada suscripción exactamente una vez y ningún callback
// posterior puede mutar el store.
func TestSyncBridge_StopDesmontaTodo(t *testing.T) {
	store := NewStore()
	source := newFakeSource()
	bridge := NewSyncBridge(store, source, nil)

	admin := testUser("u1", entity.RoleAdmin)
	bridge.Start(&admin)
	source.beansFn([]entity.GreenBean{testBean("b1", 500)})

	bridge.Stop()
	bridge.Stop() // segunda llamada: no-op

	for _, name := range []string{"green_beans", "roasting_profiles", "roasting_sessions", "sales", "users"} {
		assert.Equal(t, 1, source.unsubscribes[name], "baja exactamente una vez para %s", name)
	}
	assert.Nil(t, source.beansFn, "el callback quedó desconectado")
}

// Si una suscripción no puede abrirse, la colección queda como estaba y el
// resto de colecciones siguen sincronizando.
func TestSyncBridge_FalloDeSuscripcionNoDespacha(t *testing.T) {
	store := NewStore()
	source := newFakeSource()
	source.failSales = true
	bridge := NewSyncBridge(store, source, nil)

	u := testUser("u1", entity.RoleStaff)
	bridge.Start(&u)

	assert.Empty(t, store.State().Sales)
	source.beansFn([]entity.GreenBean{testBean("b1", 10)})
	assert.Len(t, store.State().GreenBeans, 1)
}

func TestManager_CicloDeSesion(t *testing.T) {
	source := newFakeSource()
	m := NewManager(source, nil)

	u := testUser("u1", entity.RoleStaff)
	session := m.StartSession(&u)
	require.NotNil(t, session)
	require.NotNil(t, m.Session("u1"))

	s := session.Store.State()
	require.NotNil(t, s.CurrentUser)
	assert.False(t, s.AuthLoading)

	source.beansFn([]entity.GreenBean{testBean("b1", 500)})
	assert.Len(t, session.Store.State().GreenBeans, 1)

	m.Notify("u1", entity.Notification{ID: "n1", Type: entity.NotificationSuccess})
	m.MarkRead("u1", "n1")
	notifications := session.Store.State().Notifications
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].Read)

	m.EndSession("u1")
	assert.Nil(t, m.Session("u1"))

	// La sesión terminada quedó limpia y sin suscripciones.
	final := session.Store.State()
	assert.Nil(t, final.CurrentUser)
	assert.Empty(t, final.GreenBeans)
	assert.Equal(t, 1, source.unsubscribes["sales"])
}
