package dto

import "time"

// NotificationResponse notificación en sesión de un usuario.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}

// SessionStateResponse instantánea del estado en sesión de un usuario.
type SessionStateResponse struct {
	CurrentUser      *UserResponse             `json:"current_user"`
	AuthLoading      bool                      `json:"auth_loading"`
	GreenBeans       []GreenBeanResponse       `json:"green_beans"`
	RoastingProfiles []RoastingProfileResponse `json:"roasting_profiles"`
	RoastingSessions []RoastingSessionResponse `json:"roasting_sessions"`
	Sales            []SaleResponse            `json:"sales"`
	Users            []UserResponse            `json:"users,omitempty"`
	Notifications    []NotificationResponse    `json:"notifications"`
}
