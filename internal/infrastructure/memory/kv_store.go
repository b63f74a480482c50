package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/inventario-tracker/internal/domain/repository"
)

var _ repository.KeyValueStore = (*KVStore)(nil)

// KVStore almacenamiento clave-valor en memoria (backend "memory" y tests).
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore construye el almacén vacío.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}

// Load devuelve una copia del valor; (nil, nil) si la clave no existe.
func (s *KVStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

// Save reemplaza el valor de la clave con una copia.
func (s *KVStore) Save(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}
