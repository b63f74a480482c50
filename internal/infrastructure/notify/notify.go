// Package notify implementa los sumideros de notificaciones para el usuario.
package notify

import (
	"sync"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
	"github.com/jhoicas/inventario-tracker/internal/application/ports"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

var (
	_ ports.Notifier = (*LogNotifier)(nil)
	_ ports.Notifier = (*Feed)(nil)
	_ ports.Notifier = Multi(nil)
)

// LogNotifier escribe cada notificación como evento estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador sobre el logger de la aplicación.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.WithComponent("notify")}
}

// Notify registra los errores en warn y el resto en info.
func (n *LogNotifier) Notify(level ports.Level, message string) {
	if level == ports.LevelError {
		n.log.Warn().Str("level_ui", string(level)).Msg(message)
		return
	}
	n.log.Info().Str("level_ui", string(level)).Msg(message)
}

const defaultFeedCapacity = 50

// Feed guarda las últimas notificaciones para que la presentación las consuma (equivalente a los toasts).
// Al superar la capacidad se descartan las más antiguas.
type Feed struct {
	mu       sync.Mutex
	capacity int
	items    []dto.NotificationDTO
}

// NewFeed construye el feed. capacity <= 0 usa 50.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = defaultFeedCapacity
	}
	return &Feed{capacity: capacity}
}

// Notify encola la notificación.
func (f *Feed) Notify(level ports.Level, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, dto.NotificationDTO{Level: string(level), Message: message})
	if over := len(f.items) - f.capacity; over > 0 {
		f.items = append([]dto.NotificationDTO(nil), f.items[over:]...)
	}
}

// Drain devuelve las notificaciones pendientes en orden de llegada y vacía el feed.
func (f *Feed) Drain() []dto.NotificationDTO {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.items
	f.items = nil
	if out == nil {
		out = []dto.NotificationDTO{}
	}
	return out
}

// Multi reenvía cada notificación a todos los sumideros.
type Multi []ports.Notifier

// Notify reenvía en orden.
func (m Multi) Notify(level ports.Level, message string) {
	for _, n := range m {
		n.Notify(level, message)
	}
}
