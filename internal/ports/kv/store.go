package kv

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("kv: key not found")

// Store es un almacén opaco clave -> blob. Cada clave es independiente;
// no hay atomicidad entre claves.
type Store interface {
	// Get devuelve ErrNotFound si la clave no existe.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Remove sobre una clave inexistente no es error.
	Remove(ctx context.Context, key string) error
	Close() error
}
