package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NotificationDTO notificación pendiente para la capa de presentación.
type NotificationDTO struct {
	Level   string `json:"level"` // info | error
	Message string `json:"message"`
}
