// import_products carga productos desde un CSV (mismas columnas que la exportación) al inventario
// del backend configurado. Las filas inválidas se reportan y se omiten.
//
// Uso: go run ./cmd/import_products <archivo.csv> [charset]
// charset por defecto: EXPORT_CSV_CHARSET (utf-8, windows-1252, iso-8859-1).
// Termina con código 1 si el catálogo no pudo guardarse.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-tracker/internal/application/session"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/csvio"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/persistence"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-tracker/pkg/config"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Uso: import_products <archivo.csv> [charset]")
		os.Exit(2)
	}
	charset := ""
	if len(os.Args) > 2 {
		charset = os.Args[2]
	}
	if err := run(context.Background(), os.Args[1], charset); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, csvPath, charset string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if charset == "" {
		charset = cfg.Export.CSVCharset
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr})

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("abrir CSV: %w", err)
	}
	defer f.Close()

	rows, rowErrs, err := csvio.ReadProducts(f, charset)
	if err != nil {
		return fmt.Errorf("leer CSV: %w", err)
	}
	for _, re := range rowErrs {
		log.Warn().Int("line", re.Line).Err(re.Err).Msg("fila omitida")
	}

	backend, err := storage.Open(ctx, cfg, nil, log)
	if err != nil {
		return fmt.Errorf("abrir almacenamiento: %w", err)
	}
	defer backend.Close()

	products := memory.NewProductStore()
	ledger := memory.NewMovementLedger()
	sess := session.New(session.Deps{
		Products:    products,
		Movements:   ledger,
		TxRunner:    memory.NewTxRunner(products, ledger),
		State:       persistence.NewStateStore(backend.Store),
		Logger:      log,
		Backend:     backend.Name,
		SaveTimeout: cfg.Storage.SaveTimeout,
	})
	if err := sess.Open(ctx); err != nil {
		return fmt.Errorf("cargar inventario: %w", err)
	}

	res, err := sess.ImportProducts(ctx, rows)
	for _, rej := range res.Rejected {
		log.Warn().Int("row", rej.Row).Str("name", rej.Name).Err(rej.Err).Msg("producto rechazado")
	}
	if err != nil {
		return fmt.Errorf("guardar productos en backend %s: %w", backend.Name, err)
	}

	fmt.Printf("Importados %d productos (%d filas con error) en backend %s\n",
		res.Imported, len(rowErrs)+len(res.Rejected), backend.Name)
	return nil
}
