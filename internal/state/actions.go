package state

import "github.com/beanshub/roastery-api/internal/domain/entity"

// Action es una intención de mutación del estado. El conjunto es cerrado:
// solo los tipos de este archivo implementan la interfaz.
type Action interface {
	isAction()
}

// SetUser establece (o limpia, con nil) el usuario autenticado.
// Con nil también se vacían todas las colecciones ligadas al usuario.
type SetUser struct {
	User *entity.User
}

// SetAuthLoading controla el flag de carga de la comprobación de sesión inicial.
type SetAuthLoading struct {
	Loading bool
}

// Acciones sobre la lista global de usuarios.
type (
	AddUser    struct{ User entity.User }
	UpdateUser struct{ User entity.User }
	DeleteUser struct{ ID string }
	SetUsers   struct{ Users []entity.User }
)

// Acciones sobre lotes de café verde.
type (
	AddGreenBean    struct{ Bean entity.GreenBean }
	UpdateGreenBean struct{ Bean entity.GreenBean }
	DeleteGreenBean struct{ ID string }
	SetGreenBeans   struct{ Beans []entity.GreenBean }
)

// Acciones sobre perfiles de tueste.
type (
	AddRoastingProfile    struct{ Profile entity.RoastingProfile }
	UpdateRoastingProfile struct{ Profile entity.RoastingProfile }
	DeleteRoastingProfile struct{ ID string }
	SetRoastingProfiles   struct{ Profiles []entity.RoastingProfile }
)

// Acciones sobre sesiones de tueste (inmutables: solo alta y reemplazo total).
type (
	AddRoastingSession  struct{ Session entity.RoastingSession }
	SetRoastingSessions struct{ Sessions []entity.RoastingSession }
)

// Acciones sobre ventas (inmutables: solo alta y reemplazo total).
type (
	AddSale  struct{ Sale entity.Sale }
	SetSales struct{ Sales []entity.Sale }
)

// Acciones sobre notificaciones de la sesión.
type (
	AddNotification      struct{ Notification entity.Notification }
	MarkNotificationRead struct{ ID string }
)

func (SetUser) isAction()               {}
func (SetAuthLoading) isAction()        {}
func (AddUser) isAction()               {}
func (UpdateUser) isAction()            {}
func (DeleteUser) isAction()            {}
func (SetUsers) isAction()              {}
func (AddGreenBean) isAction()          {}
func (UpdateGreenBean) isAction()       {}
func (DeleteGreenBean) isAction()       {}
func (SetGreenBeans) isAction()         {}
func (AddRoastingProfile) isAction()    {}
func (UpdateRoastingProfile) isAction() {}
func (DeleteRoastingProfile) isAction() {}
func (SetRoastingProfiles) isAction()   {}
func (AddRoastingSession) isAction()    {}
func (SetRoastingSessions) isAction()   {}
func (AddSale) isAction()               {}
func (SetSales) isAction()              {}
func (AddNotification) isAction()       {}
func (MarkNotificationRead) isAction()  {}
