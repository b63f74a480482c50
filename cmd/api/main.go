package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventario-tracker/internal/application/session"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/csvio"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/metrics"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/notify"
	infrapdf "github.com/jhoicas/inventario-tracker/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/persistence"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventario-tracker/internal/interfaces/http"
	"github.com/jhoicas/inventario-tracker/pkg/config"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
	"github.com/jhoicas/inventario-tracker/pkg/money"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg, nil, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer backend.Close()

	promMetrics := metrics.New("inventario")

	// Avisos al usuario: al log y a la cola que consume la UI (/api/notifications).
	feed := notify.NewFeed(0)
	notifier := notify.Multi{notify.NewLogNotifier(log), feed}

	products := memory.NewProductStore()
	ledger := memory.NewMovementLedger()
	sess := session.New(session.Deps{
		Products:        products,
		Movements:       ledger,
		TxRunner:        memory.NewTxRunner(products, ledger),
		State:           persistence.NewStateStore(backend.Store),
		Notifier:        notifier,
		Metrics:         promMetrics,
		Logger:          log,
		Backend:         backend.Name,
		RecentMovements: cfg.Inventory.RecentMovements,
		SaveTimeout:     cfg.Storage.SaveTimeout,
	})
	if err := sess.Open(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar inventario")
	}

	formatter, err := money.New(cfg.App.Locale, cfg.App.Currency)
	if err != nil {
		log.Fatal().Err(err).Msg("formato de moneda")
	}
	exporter, err := csvio.NewProductExporter(cfg.Export.CSVCharset)
	if err != nil {
		log.Fatal().Err(err).Msg("exportador CSV")
	}

	app := httpRouter.NewApp(cfg.App.Name)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName: cfg.App.Name,
		Service: sess,
		Feed:    feed,
		Export: httpRouter.ExportConfig{
			CSV:      exporter,
			Report:   infrapdf.NewMarotoReport(formatter),
			Filename: cfg.Export.Filename,
		},
		SeriesDays:  cfg.Inventory.SeriesDays,
		Metrics:     promMetrics,
		Logger:      log,
		SwaggerFile: cfg.HTTP.SwaggerFile,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
