package entity

import "time"

// Tipos de notificación.
const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
)

// Notification es un aviso efímero por sesión de usuario: vive solo en el
// store en memoria y no se persiste. Solo muta su flag Read.
type Notification struct {
	ID        string
	Type      string // info, warning, error, success
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}
