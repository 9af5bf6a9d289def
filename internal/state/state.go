// Package state implementa el store de aplicación por usuario: un estado
// inmutable-por-reemplazo, un vocabulario cerrado de acciones, un reductor puro
// y los puentes que lo sincronizan con el proveedor de identidad y con las
// colecciones del almacén de documentos.
package state

import "github.com/beanshub/roastery-api/internal/domain/entity"

// AppState es el estado completo de una sesión de usuario. Las colecciones se
// mantienen como listas en orden de inserción; toda mutación produce un estado
// nuevo, nunca se modifica un campo en sitio.
type AppState struct {
	CurrentUser      *entity.User
	AuthLoading      bool
	Users            []entity.User // lista global, solo se sincroniza para Admin
	GreenBeans       []entity.GreenBean
	RoastingProfiles []entity.RoastingProfile
	RoastingSessions []entity.RoastingSession
	Sales            []entity.Sale
	Notifications    []entity.Notification
}

// NewState devuelve el estado inicial: sin usuario, colecciones vacías y el
// flag de carga de autenticación activo hasta la primera notificación de sesión.
func NewState() AppState {
	return AppState{AuthLoading: true}
}
