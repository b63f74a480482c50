package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

const (
	createKVTable = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)`

	selectKV = `SELECT value FROM kv_store WHERE key = $1`

	upsertKV = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	// Totales del ledger calculados en el servidor sobre el documento "movements".
	selectLedgerTotals = `
		SELECT
			COALESCE(SUM((m->>'total')::numeric) FILTER (WHERE m->>'type' = 'IN'), 0),
			COALESCE(SUM((m->>'total')::numeric) FILTER (WHERE m->>'type' = 'OUT'), 0)
		FROM kv_store, jsonb_array_elements(value) AS m
		WHERE key = $1`
)

// KVStore guarda cada documento del estado como una fila (clave, JSONB).
type KVStore struct {
	q   Querier
	now func() time.Time
}

// NewKVStore construye el adaptador. Pasar pool o tx (Querier).
func NewKVStore(q Querier) *KVStore {
	return &KVStore{q: q, now: time.Now}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, createKVTable); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}
	return nil
}

// Load devuelve (nil, nil) si la clave no existe.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.q.QueryRow(ctx, selectKV, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get kv %s: %w", key, err)
	}
	return value, nil
}

// Save inserta o reemplaza el valor de la clave.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	if _, err := s.q.Exec(ctx, upsertKV, key, value, s.now().UTC()); err != nil {
		return fmt.Errorf("upsert kv %s: %w", key, err)
	}
	return nil
}

// LedgerTotals suma compras (IN) y ventas (OUT) directamente en PostgreSQL.
// Sirve para auditar el documento persistido sin cargarlo en memoria.
func (s *KVStore) LedgerTotals(ctx context.Context) (purchases, sales decimal.Decimal, err error) {
	err = s.q.QueryRow(ctx, selectLedgerTotals, repository.KeyMovements).Scan(&purchases, &sales)
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("ledger totals: %w", err)
	}
	return purchases, sales, nil
}
