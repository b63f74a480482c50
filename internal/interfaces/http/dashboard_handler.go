package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
)

const maxSeriesDays = 366

// DashboardHandler expone las estadísticas derivadas.
type DashboardHandler struct {
	svc         InventoryService
	defaultDays int
}

// NewDashboardHandler construye el handler. defaultDays <= 0 deja el default del caso de uso.
func NewDashboardHandler(svc InventoryService, defaultDays int) *DashboardHandler {
	return &DashboardHandler{svc: svc, defaultDays: defaultDays}
}

// Summary godoc
// @Summary      Totales del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardStats
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.svc.DashboardStats(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Series godoc
// @Summary      Serie diaria de ventas, compras y lucro
// @Tags         dashboard
// @Produce      json
// @Param        days  query  int  false  "Días hacia atrás incluyendo hoy"  default(7)
// @Success      200   {object}  dto.DailySeries
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/dashboard/series [get]
func (h *DashboardHandler) Series(c *fiber.Ctx) error {
	days := c.QueryInt("days", h.defaultDays)
	if days < 0 || days > maxSeriesDays {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "days fuera de rango (1-366)"})
	}
	out, err := h.svc.DailySeries(c.UserContext(), days)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
