package persistence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-tracker/internal/infrastructure/persistence"
)

func TestStateStore_ClaveVaciaDevuelveNil(t *testing.T) {
	s := persistence.NewStateStore(memory.NewKVStore())

	products, err := s.LoadProducts(context.Background())
	require.NoError(t, err)
	assert.Nil(t, products)

	movements, err := s.LoadMovements(context.Background())
	require.NoError(t, err)
	assert.Nil(t, movements)
}

func TestStateStore_GuardaYCargaConTiposSemanticos(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	s := persistence.NewStateStore(kv)
	at := time.Date(2026, 10, 15, 12, 30, 0, 0, time.UTC)

	require.NoError(t, s.SaveProducts(ctx, []*entity.Product{{
		ID: "p1", Name: "Caneta", Code: "CAN-01", Quantity: 10, MinQuantity: 5,
		PurchasePrice: decimal.RequireFromString("2.00"), SalePrice: decimal.RequireFromString("3.50"),
		CreatedAt: at, UpdatedAt: at,
	}}))
	require.NoError(t, s.SaveMovements(ctx, []*entity.Movement{{
		ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5,
		UnitPrice: decimal.RequireFromString("2.00"), Total: decimal.RequireFromString("10.00"), Date: at,
	}}))

	products, err := s.LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Caneta", products[0].Name)
	assert.True(t, products[0].SalePrice.Equal(decimal.RequireFromString("3.5")))
	assert.True(t, products[0].CreatedAt.Equal(at))

	movements, err := s.LoadMovements(ctx)
	require.NoError(t, err)
	require.Len(t, movements, 1)
	assert.True(t, movements[0].Total.Equal(decimal.NewFromInt(10)))
}

func TestStateStore_ListaVaciaSeGuardaComoArreglo(t *testing.T) {
	kv := memory.NewKVStore()
	s := persistence.NewStateStore(kv)
	require.NoError(t, s.SaveMovements(context.Background(), nil))

	raw, err := kv.Load(context.Background(), repository.KeyMovements)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

// Los registros guardados por la versión web usan números JSON y fechas ISO con milisegundos.
func TestStateStore_AceptaFormatoNumericoDelNavegador(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Save(ctx, repository.KeyProducts, []byte(`[{
		"id":"k3j9x0a1b","name":"Mouse","code":"MS-1","quantity":3,"category":"Eletrônicos",
		"supplier":"ACME","minQuantity":5,"purchasePrice":20.5,"salePrice":35,
		"createdAt":"2025-01-10T14:03:22.123Z","updatedAt":"2025-01-10T14:03:22.123Z"}]`)))

	products, err := persistence.NewStateStore(kv).LoadProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.True(t, products[0].PurchasePrice.Equal(decimal.RequireFromString("20.5")))
	assert.True(t, products[0].IsLowStock())
}

type failingKV struct{}

func (failingKV) Load(context.Context, string) ([]byte, error) { return nil, errors.New("disco lleno") }
func (failingKV) Save(context.Context, string, []byte) error   { return errors.New("disco lleno") }

func TestStateStore_EnvuelveErroresDelBackend(t *testing.T) {
	s := persistence.NewStateStore(failingKV{})
	_, err := s.LoadProducts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load products")

	err = s.SaveMovements(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save movements")
}

func TestStateStore_ElementoNullEsDocumentoCorrupto(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	require.NoError(t, kv.Save(ctx, repository.KeyProducts, []byte(`[null]`)))
	require.NoError(t, kv.Save(ctx, repository.KeyMovements, []byte(`[{"id":"m1","type":"IN","quantity":1},null]`)))
	s := persistence.NewStateStore(kv)

	_, err := s.LoadProducts(ctx)
	require.ErrorIs(t, err, persistence.ErrCorruptDocument)
	assert.Contains(t, err.Error(), "products")

	_, err = s.LoadMovements(ctx)
	require.ErrorIs(t, err, persistence.ErrCorruptDocument)
	assert.Contains(t, err.Error(), "elemento 1")
}
