package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-tracker/internal/application/dto"
)

// InventoryHandler maneja las peticiones HTTP de movimientos.
type InventoryHandler struct {
	svc InventoryService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(svc InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// RecordMovement godoc
// @Summary      Registrar entrada (IN) o salida (OUT)
// @Description  Rechaza con 409 si la salida deja el stock negativo. lowStock=true si la nueva cantidad queda en o bajo el mínimo.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "productId, type, quantity, unitPrice (opcional)"
// @Success      201   {object}  dto.MovementResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if verr := validationError(in); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	if verr := priceError(namedPrice{"unitPrice", in.UnitPrice}); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(verr)
	}
	out, err := h.svc.RecordMovement(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMovements godoc
// @Summary      Listar movimientos (más recientes primero)
// @Tags         inventory
// @Produce      json
// @Param        limit  query  int  false  "Máximo de movimientos; 0 = todos"  default(0)
// @Success      200    {object}  dto.MovementListResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		limit = 0
	}
	out, err := h.svc.ListMovements(c.UserContext(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
