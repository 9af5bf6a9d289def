package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin   = "Admin"
	RoleRoaster = "Roaster"
	RoleStaff   = "Staff"
)

// User representa un usuario de la tostaduría. Exactamente un rol por usuario;
// el rol solo condiciona las rutas permitidas, los datos siempre van filtrados por dueño.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	ProfileImage string
	Role         string // Admin, Roaster, Staff
	IsActive     bool
	CreatedAt    time.Time
	LastLogin    *time.Time // nil hasta el primer login
}

// ValidRole indica si el rol es uno de los tres conocidos.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleRoaster || role == RoleStaff
}
