// Package persistence serializa catálogo y ledger como dos documentos JSON independientes
// sobre cualquier repository.KeyValueStore.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/inventario-tracker/internal/domain/entity"
	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

// StateStore codifica productos y movimientos bajo las claves "products" y "movements".
type StateStore struct {
	kv repository.KeyValueStore
}

// NewStateStore construye el codec sobre el backend clave-valor.
func NewStateStore(kv repository.KeyValueStore) *StateStore {
	return &StateStore{kv: kv}
}

// LoadProducts devuelve nil si la clave no existe o está vacía.
// Un documento con elementos null se considera corrupto.
func (s *StateStore) LoadProducts(ctx context.Context) ([]*entity.Product, error) {
	var out []*entity.Product
	if err := s.load(ctx, repository.KeyProducts, &out); err != nil {
		return nil, err
	}
	if err := noNullItems(repository.KeyProducts, out); err != nil {
		return nil, err
	}
	return out, nil
}

// LoadMovements devuelve nil si la clave no existe o está vacía.
// Un documento con elementos null se considera corrupto.
func (s *StateStore) LoadMovements(ctx context.Context) ([]*entity.Movement, error) {
	var out []*entity.Movement
	if err := s.load(ctx, repository.KeyMovements, &out); err != nil {
		return nil, err
	}
	if err := noNullItems(repository.KeyMovements, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveProducts guarda el catálogo completo bajo "products".
func (s *StateStore) SaveProducts(ctx context.Context, products []*entity.Product) error {
	return s.save(ctx, repository.KeyProducts, nonNil(products))
}

// SaveMovements guarda el ledger completo bajo "movements".
func (s *StateStore) SaveMovements(ctx context.Context, movements []*entity.Movement) error {
	return s.save(ctx, repository.KeyMovements, nonNil(movements))
}

func (s *StateStore) load(ctx context.Context, key string, dst any) error {
	raw, err := s.kv.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *StateStore) save(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// ErrCorruptDocument documento decodificable pero con contenido inválido.
var ErrCorruptDocument = errors.New("documento corrupto")

func noNullItems[T any](key string, items []*T) error {
	for i, it := range items {
		if it == nil {
			return fmt.Errorf("decode %s: elemento %d es null: %w", key, i, ErrCorruptDocument)
		}
	}
	return nil
}

// nonNil hace que una lista vacía se guarde como [] y no como null.
func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
