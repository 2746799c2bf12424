package storage

import (
	"context"
	"testing"
	"time"

	"echo-journal/internal/platform/logger"
	"echo-journal/internal/ports/kv/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersister_LastSnapshotWins(t *testing.T) {
	store := kvtest.New()
	svc := NewService(store, logger.Nop())
	slot := NewSlot[int](svc, NamespaceSettings)

	p := NewPersister(slot, time.Second)
	defer func() { require.NoError(t, p.Close(context.Background())) }()

	for i := 1; i <= 200; i++ {
		p.Submit(i)
	}
	require.NoError(t, p.Flush(context.Background()))

	assert.Equal(t, 200, slot.Get(context.Background(), 0))
	writes := store.Writes(string(NamespaceSettings))
	assert.GreaterOrEqual(t, writes, 1)
	assert.LessOrEqual(t, writes, 200)
}

func TestPersister_SubmitDoesNotWaitForWriter(t *testing.T) {
	store := kvtest.New()
	gate := store.Gate()
	svc := NewService(store, logger.Nop())
	slot := NewSlot[int](svc, NamespaceEvents)

	p := NewPersister(slot, time.Second)

	// Con el writer bloqueado, Submit sigue volviendo enseguida.
	p.Submit(1)
	p.Submit(2)
	p.Submit(3)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, p.Flush(ctx), context.DeadlineExceeded)

	close(gate)
	require.NoError(t, p.Flush(context.Background()))
	assert.Equal(t, 3, slot.Get(context.Background(), 0))
	assert.LessOrEqual(t, store.Writes(string(NamespaceEvents)), 2, "1 in flight, 2 coalesced into 3")

	require.NoError(t, p.Close(context.Background()))
}

func TestPersister_CloseDrainsPending(t *testing.T) {
	store := kvtest.New()
	svc := NewService(store, logger.Nop())
	slot := NewSlot[string](svc, NamespaceDiaries)

	p := NewPersister(slot, 0)
	p.Submit("last")
	require.NoError(t, p.Close(context.Background()))

	assert.Equal(t, "last", slot.Get(context.Background(), ""))

	// Después de Close los snapshots se descartan sin bloquear.
	p.Submit("ignored")
	require.NoError(t, p.Flush(context.Background()))
	require.NoError(t, p.Close(context.Background()))
	assert.Equal(t, "last", slot.Get(context.Background(), ""))
}

func TestPersister_WriteFailureIsSwallowed(t *testing.T) {
	store := kvtest.New()
	store.FailWrites(true)
	svc := NewService(store, logger.Nop())
	slot := NewSlot[int](svc, NamespaceEvents)

	p := NewPersister(slot, time.Second)
	p.Submit(7)
	require.NoError(t, p.Flush(context.Background()))
	require.NoError(t, p.Close(context.Background()))

	assert.Equal(t, 1, store.Writes(string(NamespaceEvents)))
}
