package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"echo-journal/internal/platform/logger"
	"echo-journal/internal/ports/kv"
)

// Namespace es la clave fija bajo la que vive una colección.
type Namespace string

const (
	NamespaceEvents   Namespace = "echo_events"
	NamespaceDiaries  Namespace = "echo_diaries"
	NamespaceSettings Namespace = "echo_settings"
)

var (
	ErrCorrupt = errors.New("stored value is not valid json")
)

// Service envuelve el kv.Store. Load/Save/Delete devuelven el error real;
// Slot es la frontera que lo convierte en log + default.
type Service struct {
	kv  kv.Store
	log logger.Logger
}

func NewService(store kv.Store, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		kv:  store,
		log: log.With(map[string]any{"component": "storage"}),
	}
}

// Load decodifica el valor de ns en dst. found=false si la clave no existe.
func (s *Service) Load(ctx context.Context, ns Namespace, dst any) (bool, error) {
	b, err := s.kv.Get(ctx, string(ns))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", ns, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorrupt, ns, err)
	}
	return true, nil
}

func (s *Service) Save(ctx context.Context, ns Namespace, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ns, err)
	}
	if err := s.kv.Set(ctx, string(ns), b); err != nil {
		return fmt.Errorf("write %s: %w", ns, err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ns Namespace) error {
	if err := s.kv.Remove(ctx, string(ns)); err != nil {
		return fmt.Errorf("remove %s: %w", ns, err)
	}
	return nil
}

func (s *Service) Close() error {
	return s.kv.Close()
}

// Slot es la vista tipada de un namespace. Nunca devuelve error:
// las fallas se loguean y se usa el default (lectura) o se ignoran (escritura).
type Slot[T any] struct {
	svc *Service
	ns  Namespace
}

func NewSlot[T any](svc *Service, ns Namespace) Slot[T] {
	return Slot[T]{svc: svc, ns: ns}
}

func (s Slot[T]) Namespace() Namespace { return s.ns }

func (s Slot[T]) Get(ctx context.Context, def T) T {
	var v T
	found, err := s.svc.Load(ctx, s.ns, &v)
	if err != nil {
		s.svc.log.Error("error reading namespace, using default", map[string]any{
			"namespace": string(s.ns),
			"error":     err,
		})
		return def
	}
	if !found {
		return def
	}
	return v
}

func (s Slot[T]) Set(ctx context.Context, v T) {
	if err := s.svc.Save(ctx, s.ns, v); err != nil {
		s.svc.log.Error("error writing namespace", map[string]any{
			"namespace": string(s.ns),
			"error":     err,
		})
	}
}

func (s Slot[T]) Remove(ctx context.Context) {
	if err := s.svc.Delete(ctx, s.ns); err != nil {
		s.svc.log.Error("error removing namespace", map[string]any{
			"namespace": string(s.ns),
			"error":     err,
		})
	}
}
