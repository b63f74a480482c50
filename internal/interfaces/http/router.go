package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-tracker/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	Service     InventoryService
	Feed        NotificationFeed
	Export      ExportConfig
	SeriesDays  int
	Metrics     *metrics.Inventory // nil = sin /metrics
	Logger      *logger.Logger     // nil = sin log de peticiones
	SwaggerFile string             // vacío o inexistente = sin /docs
}

// NewApp crea la aplicación Fiber con recover y errores JSON.
func NewApp(name string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               name,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"code": "HTTP_ERROR", "message": err.Error()})
		},
	})
	app.Use(recover.New())
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Logger != nil {
		app.Use(RequestLogger(deps.Logger))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}
	// Swagger UI en local: http://localhost:<port>/docs
	if deps.SwaggerFile != "" {
		if _, err := os.Stat(deps.SwaggerFile); err == nil {
			app.Use(swagger.New(swagger.Config{
				BasePath: "/",
				FilePath: deps.SwaggerFile,
				Path:     "docs",
				Title:    deps.AppName,
			}))
		}
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Service)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Service)
	invGroup.Post("/movements", inventoryHandler.RecordMovement)
	invGroup.Get("/movements", inventoryHandler.ListMovements)

	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.Service, deps.SeriesDays)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/series", dashboardHandler.Series)

	exports := api.Group("/export")
	exportHandler := NewExportHandler(deps.Service, deps.Export)
	if deps.Export.CSV != nil {
		exports.Get("/products.csv", exportHandler.ProductsCSV)
	}
	if deps.Export.Report != nil {
		exports.Get("/report.pdf", exportHandler.ReportPDF)
	}

	if deps.Feed != nil {
		api.Get("/notifications", NewNotificationHandler(deps.Feed).Drain)
	}
}
