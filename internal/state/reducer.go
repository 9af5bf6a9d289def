package state

import "github.com/beanshub/roastery-api/internal/domain/entity"

// Reduce es la función de transición de estado: pura, total y síncrona.
// Una acción no reconocida devuelve el estado sin cambios, nunca entra en pánico.
// Las colecciones afectadas se reconstruyen; las demás se comparten tal cual.
func Reduce(s AppState, action Action) AppState {
	switch a := action.(type) {
	case SetUser:
		s.CurrentUser = a.User
		if a.User == nil {
			// Logout: ningún dato de la sesión anterior puede filtrarse a la vista
			// desautenticada ni a una sesión nueva.
			s.Users = nil
			s.GreenBeans = nil
			s.RoastingProfiles = nil
			s.RoastingSessions = nil
			s.Sales = nil
		}
		return s

	case SetAuthLoading:
		s.AuthLoading = a.Loading
		return s

	case AddUser:
		s.Users = append(cloneSlice(s.Users), a.User)
		return s

	case UpdateUser:
		users := make([]entity.User, len(s.Users))
		for i, u := range s.Users {
			if u.ID == a.User.ID {
				users[i] = a.User
			} else {
				users[i] = u
			}
		}
		s.Users = users
		// El usuario autenticado y su entrada en la lista son la misma entidad
		// lógica: un único punto de escritura evita que diverjan.
		if s.CurrentUser != nil && s.CurrentUser.ID == a.User.ID {
			updated := a.User
			s.CurrentUser = &updated
		}
		return s

	case DeleteUser:
		s.Users = filterUsers(s.Users, a.ID)
		return s

	case SetUsers:
		s.Users = a.Users
		return s

	case AddGreenBean:
		s.GreenBeans = append(cloneSlice(s.GreenBeans), a.Bean)
		return s

	case UpdateGreenBean:
		beans := make([]entity.GreenBean, len(s.GreenBeans))
		for i, b := range s.GreenBeans {
			if b.ID == a.Bean.ID {
				beans[i] = a.Bean
			} else {
				beans[i] = b
			}
		}
		s.GreenBeans = beans
		return s

	case DeleteGreenBean:
		out := make([]entity.GreenBean, 0, len(s.GreenBeans))
		for _, b := range s.GreenBeans {
			if b.ID != a.ID {
				out = append(out, b)
			}
		}
		s.GreenBeans = out
		return s

	case SetGreenBeans:
		s.GreenBeans = a.Beans
		return s

	case AddRoastingProfile:
		s.RoastingProfiles = append(cloneSlice(s.RoastingProfiles), a.Profile)
		return s

	case UpdateRoastingProfile:
		profiles := make([]entity.RoastingProfile, len(s.RoastingProfiles))
		for i, p := range s.RoastingProfiles {
			if p.ID == a.Profile.ID {
				profiles[i] = a.Profile
			} else {
				profiles[i] = p
			}
		}
		s.RoastingProfiles = profiles
		return s

	case DeleteRoastingProfile:
		out := make([]entity.RoastingProfile, 0, len(s.RoastingProfiles))
		for _, p := range s.RoastingProfiles {
			if p.ID != a.ID {
				out = append(out, p)
			}
		}
		s.RoastingProfiles = out
		return s

	case SetRoastingProfiles:
		s.RoastingProfiles = a.Profiles
		return s

	case AddRoastingSession:
		s.RoastingSessions = append(cloneSlice(s.RoastingSessions), a.Session)
		return s

	case SetRoastingSessions:
		s.RoastingSessions = a.Sessions
		return s

	case AddSale:
		s.Sales = append(cloneSlice(s.Sales), a.Sale)
		return s

	case SetSales:
		s.Sales = a.Sales
		return s

	case AddNotification:
		notifications := make([]entity.Notification, 0, len(s.Notifications)+1)
		notifications = append(notifications, a.Notification)
		notifications = append(notifications, s.Notifications...)
		s.Notifications = notifications
		return s

	case MarkNotificationRead:
		notifications := make([]entity.Notification, len(s.Notifications))
		for i, n := range s.Notifications {
			if n.ID == a.ID {
				n.Read = true
			}
			notifications[i] = n
		}
		s.Notifications = notifications
		return s

	default:
		return s
	}
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func filterUsers(users []entity.User, id string) []entity.User {
	out := make([]entity.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
