package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrSessionNotOpen se usa como valor de panic: usar el núcleo sin sesión abierta es un error de programación.
	ErrSessionNotOpen = errors.New("sesión de inventario no inicializada")
)
