package repository

import "context"

// Claves del almacenamiento local.
const (
	KeyProducts  = "products"
	KeyMovements = "movements"
)

// KeyValueStore es el adaptador de persistencia local (clave → documento serializado).
// Load devuelve (nil, nil) si la clave no existe.
type KeyValueStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}
