package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

func testUser(id, role string) entity.User {
	return entity.User{
		ID:        id,
		Email:     id + "@beanshub.test",
		Name:      "Usuario " + id,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testBean(id string, quantity float64) entity.GreenBean {
	return entity.GreenBean{
		ID:                id,
		OwnerID:           "u1",
		SupplierName:      "Koperasi Kopi Gayo",
		Variety:           "Arabica Gayo",
		Quantity:          quantity,
		LowStockThreshold: 50,
	}
}

// Reproducir la misma secuencia de acciones desde el mismo estado inicial
// siempre produce el mismo estado final.
func TestReduce_Determinista(t *testing.T) {
	u := testUser("u1", entity.RoleAdmin)
	actions := []Action{
		SetAuthLoading{Loading: false},
		SetUser{User: &u},
		AddGreenBean{Bean: testBean("b1", 500)},
		AddGreenBean{Bean: testBean("b2", 200)},
		UpdateGreenBean{Bean: testBean("b1", 480)},
		AddNotification{Notification: entity.Notification{ID: "n1", Type: entity.NotificationInfo}},
		DeleteGreenBean{ID: "b2"},
	}

	run := func() AppState {
		s := NewState()
		for _, a := range actions {
			s = Reduce(s, a)
		}
		return s
	}

	assert.Equal(t, run(), run())
}

func TestReduce_DeleteUser(t *testing.T) {
	s := NewState()
	s = Reduce(s, SetUsers{Users: []entity.User{testUser("u1", entity.RoleAdmin), testUser("u2", entity.RoleStaff)}})

	s = Reduce(s, DeleteUser{ID: "u2"})
	for _, u := range s.Users {
		assert.NotEqual(t, "u2", u.ID)
	}
	require.Len(t, s.Users, 1)

	// Borrar un id ausente es un no-op, no un error.
	s = Reduce(s, DeleteUser{ID: "no-existe"})
	assert.Len(t, s.Users, 1)
}

// Actualizar al usuario autenticado también refresca CurrentUser: las dos
// vistas de la misma entidad no pueden divergir.
func TestReduce_UpdateUser_RefrescaCurrentUser(t *testing.T) {
	current := testUser("u1", entity.RoleAdmin)
	s := NewState()
	s = Reduce(s, SetUser{User: &current})
	s = Reduce(s, SetUsers{Users: []entity.User{current, testUser("u2", entity.RoleStaff)}})

	updated := current
	updated.Name = "Nombre Nuevo"
	updated.Role = entity.RoleRoaster
	s = Reduce(s, UpdateUser{User: updated})

	count := 0
	for _, u := range s.Users {
		if u.ID == "u1" {
			count++
			assert.Equal(t, updated, u)
		}
	}
	assert.Equal(t, 1, count, "exactamente una entrada con el id actualizado")
	require.NotNil(t, s.CurrentUser)
	assert.Equal(t, updated, *s.CurrentUser)

	// Actualizar a otro usuario no toca CurrentUser.
	other := testUser("u2", entity.RoleStaff)
	other.Name = "Otro"
	s = Reduce(s, UpdateUser{User: other})
	assert.Equal(t, updated, *s.CurrentUser)
}

// Escenario: el logout limpia el usuario y todas las colecciones ligadas a él,
// sin importar su contenido previo.
func TestReduce_Logout_LimpiaColecciones(t *testing.T) {
	u := testUser("u1", entity.RoleAdmin)
	s := NewState()
	s = Reduce(s, SetUser{User: &u})
	s = Reduce(s, SetGreenBeans{Beans: []entity.GreenBean{testBean("b1", 500)}})
	s = Reduce(s, SetRoastingProfiles{Profiles: []entity.RoastingProfile{{ID: "p1"}}})
	s = Reduce(s, SetRoastingSessions{Sessions: []entity.RoastingSession{{ID: "rs1"}}})
	s = Reduce(s, SetSales{Sales: []entity.Sale{{ID: "s1"}}})
	s = Reduce(s, SetUsers{Users: []entity.User{u}})

	s = Reduce(s, SetUser{User: nil})

	assert.Nil(t, s.CurrentUser)
	assert.Empty(t, s.GreenBeans)
	assert.Empty(t, s.RoastingProfiles)
	assert.Empty(t, s.RoastingSessions)
	assert.Empty(t, s.Sales)
	assert.Empty(t, s.Users)
}

// Marcar leída dos veces la misma notificación equivale a marcarla una vez.
func TestReduce_MarkNotificationRead_Idempotente(t *testing.T) {
	s := NewState()
	s = Reduce(s, AddNotification{Notification: entity.Notification{ID: "n1", Type: entity.NotificationWarning}})
	s = Reduce(s, AddNotification{Notification: entity.Notification{ID: "n2", Type: entity.NotificationSuccess}})

	once := Reduce(s, MarkNotificationRead{ID: "n1"})
	twice := Reduce(once, MarkNotificationRead{ID: "n1"})

	assert.Equal(t, once, twice)
	require.Len(t, once.Notifications, 2)
	// Las notificaciones se insertan al principio: n2 primero.
	assert.Equal(t, "n2", once.Notifications[0].ID)
	assert.False(t, once.Notifications[0].Read)
	assert.True(t, once.Notifications[1].Read)
}

// Una acción no reconocida devuelve el estado sin cambios.
type unknownAction struct{}

func (unknownAction) isAction() {}

func TestReduce_AccionDesconocidaEsNoOp(t *testing.T) {
	u := testUser("u1", entity.RoleStaff)
	s := NewState()
	s = Reduce(s, SetUser{User: &u})

	assert.NotPanics(t, func() {
		after := Reduce(s, unknownAction{})
		assert.Equal(t, s, after)
	})
}

// El reductor nunca muta el estado de entrada: mutación siempre por reemplazo.
func TestReduce_NoMutaElEstadoAnterior(t *testing.T) {
	s := NewState()
	s = Reduce(s, SetGreenBeans{Beans: []entity.GreenBean{testBean("b1", 500)}})

	before := s.GreenBeans[0].Quantity
	_ = Reduce(s, UpdateGreenBean{Bean: testBean("b1", 20)})

	assert.Equal(t, before, s.GreenBeans[0].Quantity)
}
