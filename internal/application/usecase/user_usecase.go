// Package usecase contiene la administración de usuarios, reservada al Admin.
package usecase

import (
	"github.com/beanshub/roastery-api/internal/application/auth"
	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/state"
)

// UserUseCase administración de usuarios: listar, actualizar, desactivar.
type UserUseCase struct {
	userRepo repository.UserRepository
	feed     ports.ChangeFeed
	sessions *state.Manager
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(userRepo repository.UserRepository, feed ports.ChangeFeed, sessions *state.Manager) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, feed: feed, sessions: sessions}
}

// List devuelve usuarios paginados.
func (uc *UserUseCase) List(page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// Update actualiza perfil, rol o estado de un usuario. Un rol desconocido
// devuelve ErrInvalidInput. Desactivar a un usuario cierra su sesión.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	deactivated := false
	if in.IsActive != nil {
		deactivated = user.IsActive && !*in.IsActive
		user.IsActive = *in.IsActive
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionUsers, "")

	if deactivated {
		uc.sessions.EndSession(user.ID)
	} else if session := uc.sessions.Session(user.ID); session != nil {
		// Refresca el usuario en su propia sesión abierta.
		refreshed := *user
		uc.sessions.StartSession(&refreshed)
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario y cierra su sesión si estaba abierta.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	uc.sessions.EndSession(id)
	if err := uc.userRepo.Delete(id); err != nil {
		return err
	}
	uc.feed.CollectionChanged(ports.CollectionUsers, "")
	return nil
}

// Notifications devuelve las notificaciones de la sesión del usuario.
func (uc *UserUseCase) Notifications(userID string) []dto.NotificationResponse {
	session := uc.sessions.Session(userID)
	if session == nil {
		return []dto.NotificationResponse{}
	}
	snapshot := session.Store.State()
	out := make([]dto.NotificationResponse, 0, len(snapshot.Notifications))
	for _, n := range snapshot.Notifications {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			Read:      n.Read,
		})
	}
	return out
}

// MarkNotificationRead marca una notificación como leída; idempotente.
func (uc *UserUseCase) MarkNotificationRead(userID, notificationID string) {
	uc.sessions.MarkRead(userID, notificationID)
}
