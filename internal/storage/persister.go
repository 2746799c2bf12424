package storage

import (
	"context"
	"sync"
	"time"
)

const DefaultPersistTimeout = 5 * time.Second

// Persister escribe snapshots completos de un Slot en segundo plano.
// Una sola goroutine escritora por instancia: las escrituras salen en el
// orden en que se enviaron y solo se escribe el snapshot más reciente
// pendiente, así que nunca se pisa un estado nuevo con uno viejo.
type Persister[T any] struct {
	slot    Slot[T]
	timeout time.Duration

	mu       sync.Mutex
	pending  T
	dirty    bool
	queued   uint64
	written  uint64
	progress chan struct{}
	closed   bool

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewPersister[T any](slot Slot[T], timeout time.Duration) *Persister[T] {
	if timeout <= 0 {
		timeout = DefaultPersistTimeout
	}
	p := &Persister[T]{
		slot:     slot,
		timeout:  timeout,
		progress: make(chan struct{}),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

// Submit encola v y vuelve enseguida. v no debe mutarse después.
func (p *Persister[T]) Submit(v T) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.slot.svc.log.Warn("persister closed, snapshot dropped", map[string]any{
			"namespace": string(p.slot.ns),
		})
		return
	}
	p.pending = v
	p.dirty = true
	p.queued++
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Flush espera a que todo lo enviado hasta ahora haya sido escrito (o intentado).
func (p *Persister[T]) Flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.queued
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if p.written >= target {
			p.mu.Unlock()
			return nil
		}
		ch := p.progress
		p.mu.Unlock()

		select {
		case <-ch:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close escribe lo pendiente y detiene la goroutine.
func (p *Persister[T]) Close(ctx context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.stopOnce.Do(func() { close(p.stop) })

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister[T]) run() {
	defer close(p.done)
	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.stop:
			p.drain()
			return
		}
	}
}

func (p *Persister[T]) drain() {
	for {
		p.mu.Lock()
		if !p.dirty {
			p.mu.Unlock()
			return
		}
		v, gen := p.pending, p.queued
		var zero T
		p.pending = zero
		p.dirty = false
		p.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		p.slot.Set(ctx, v)
		cancel()

		p.mu.Lock()
		p.written = gen
		close(p.progress)
		p.progress = make(chan struct{})
		p.mu.Unlock()
	}
}
