// Package storage elige el backend clave-valor donde se guarda el estado según la configuración.
package storage

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/filestore"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/mongostore"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/postgres"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/redisstore"
	"github.com/jhoicas/inventario-tracker/pkg/config"
	"github.com/jhoicas/inventario-tracker/pkg/logger"
)

// Backend almacén abierto más la función que libera sus conexiones.
type Backend struct {
	Name  string
	Store repository.KeyValueStore
	Close func()
}

// Open conecta el backend configurado. El llamador debe invocar Close al terminar.
// Fs solo se usa con el backend file; nil = sistema de archivos real.
func Open(ctx context.Context, cfg *config.Config, fs afero.Fs, log *logger.Logger) (*Backend, error) {
	log = log.WithComponent("storage")
	b := &Backend{Name: cfg.Storage.Backend, Close: func() {}}

	switch cfg.Storage.Backend {
	case config.BackendMemory:
		b.Store = memory.NewKVStore()

	case config.BackendFile:
		if fs == nil {
			fs = afero.NewOsFs()
		}
		st, err := filestore.New(fs, cfg.Storage.Dir)
		if err != nil {
			return nil, err
		}
		b.Store = st

	case config.BackendRedis:
		client, err := redisstore.NewClient(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		b.Store = redisstore.New(client, cfg.Storage.KeyPrefix)
		b.Close = func() { _ = client.Close() }

	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		st := postgres.NewKVStore(pool)
		if err := st.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		purchases, sales, err := st.LedgerTotals(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("no se pudieron calcular los totales del ledger")
		} else {
			log.Info().
				Str("purchases", purchases.StringFixed(2)).
				Str("sales", sales.StringFixed(2)).
				Msg("totales del ledger persistido")
		}
		b.Store = st
		b.Close = pool.Close

	case config.BackendMongo:
		client, err := mongostore.Connect(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		b.Store = mongostore.New(client, cfg.Storage.MongoDatabase, cfg.Storage.MongoCollection)
		b.Close = func() { _ = client.Disconnect(context.Background()) }

	default:
		return nil, fmt.Errorf("storage: backend desconocido %q", cfg.Storage.Backend)
	}

	log.Info().Str("backend", b.Name).Msg("almacenamiento listo")
	return b, nil
}
