package dto

// UpdateUserRequest entrada para actualizar un usuario (campos opcionales).
type UpdateUserRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone        *string `json:"phone"`
	ProfileImage *string `json:"profile_image"`
	Role         *string `json:"role" validate:"omitempty,oneof=Admin Roaster Staff"`
	IsActive     *bool   `json:"is_active"`
}

// UserListResponse lista paginada de usuarios.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
