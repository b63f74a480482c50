package ports

// Level nivel de una notificación para el usuario.
type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

// Notifier es el sumidero de notificaciones hacia la capa de presentación
// (confirmaciones de catálogo, stock insuficiente, alerta de stock bajo).
type Notifier interface {
	Notify(level Level, message string)
}

// NopNotifier descarta todas las notificaciones.
type NopNotifier struct{}

func (NopNotifier) Notify(Level, string) {}
