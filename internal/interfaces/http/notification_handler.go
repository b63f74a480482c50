package http

import "github.com/gofiber/fiber/v2"

// NotificationHandler entrega y vacía las notificaciones pendientes.
type NotificationHandler struct {
	feed NotificationFeed
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(feed NotificationFeed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

// Drain godoc
// @Summary      Notificaciones pendientes (se vacían al leerlas)
// @Tags         notifications
// @Produce      json
// @Success      200  {array}  dto.NotificationDTO
// @Router       /api/notifications [get]
func (h *NotificationHandler) Drain(c *fiber.Ctx) error {
	return c.JSON(h.feed.Drain())
}
