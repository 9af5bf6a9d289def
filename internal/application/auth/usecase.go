// Package auth implementa registro, login, cambio de contraseña y el puente
// entre la identidad verificada y la sesión de estado del usuario.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/state"
	"github.com/beanshub/roastery-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, cambio de
// contraseña y ciclo de vida de la sesión de estado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *state.Manager
	feed     ports.ChangeFeed
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *state.Manager, feed ports.ChangeFeed, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, feed: feed, jwtCfg: jwtCfg}
}

// Register crea un usuario con rol Staff por defecto: hashea la contraseña
// con bcrypt, persiste y abre sesión. Devuelve ErrEmailAlreadyExists si el
// email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Phone:        in.Phone,
		Role:         entity.RoleStaff,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionUsers, "")

	token, err := uc.openSession(user)
	if err != nil {
		return nil, err
	}
	uc.sessions.Notify(user.ID, welcomeNotification(user.Name))
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Login verifica email/contraseña, refresca LastLogin, genera el JWT y abre
// (o refresca) la sesión de estado del usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}

	now := time.Now()
	user.LastLogin = &now
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionUsers, "")

	token, err := uc.openSession(user)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// Logout cierra la sesión de estado del usuario: primero se desuscriben las
// colecciones y después se limpia el estado.
func (uc *AuthUseCase) Logout(userID string) {
	uc.sessions.EndSession(userID)
}

// ChangePassword verifica la contraseña actual y guarda el hash de la nueva.
func (uc *AuthUseCase) ChangePassword(userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	if err := uc.userRepo.Update(user); err != nil {
		return err
	}
	uc.sessions.Notify(userID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationSuccess,
		Title:     "Contraseña actualizada",
		Message:   "Tu contraseña fue cambiada correctamente",
		Timestamp: time.Now(),
	})
	return nil
}

// Profile devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Profile(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return ToUserResponse(user), nil
}

func (uc *AuthUseCase) openSession(user *entity.User) (string, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", err
	}
	uc.sessions.StartSession(user)
	return token, nil
}

func welcomeNotification(name string) entity.Notification {
	return entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationSuccess,
		Title:     "Bienvenido a BeansHub",
		Message:   "Cuenta creada para " + name,
		Timestamp: time.Now(),
	}
}

// ToUserResponse mapea la entidad al perfil público (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Phone:        u.Phone,
		ProfileImage: u.ProfileImage,
		Role:         u.Role,
		IsActive:     u.IsActive,
		CreatedAt:    u.CreatedAt,
		LastLogin:    u.LastLogin,
	}
}
