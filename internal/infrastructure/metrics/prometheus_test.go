package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/internal/infrastructure/metrics"
)

func TestInventory_Contadores(t *testing.T) {
	m := metrics.New("inventario")
	m.MovementApplied("IN")
	m.MovementApplied("IN")
	m.MovementApplied("OUT")
	m.MovementRejected("insufficient_stock")
	m.LowStockAlert()
	m.PersistFailed("movements")

	n, err := testutil.GatherAndCount(m.Registry(), "inventario_movements_applied_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "una serie por tipo")
}

func TestInventory_MiddlewareYHandler(t *testing.T) {
	m := metrics.New("inventario")
	app := fiber.New()
	app.Use(m.Middleware())
	app.Get("/api/products/:id", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNotFound) })
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/products/abc", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `inventario_http_requests_total{method="GET",route="/api/products/:id",status="404"} 1`)
}
