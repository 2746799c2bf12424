package storage

import (
	"bytes"
	"context"
	"testing"

	"echo-journal/internal/platform/logger"
	"echo-journal/internal/ports/kv/kvtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type item struct {
	ID   string `json:"id"`
	Note string `json:"note,omitempty"`
}

func newTestService(t *testing.T) (*Service, *kvtest.Store, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	store := kvtest.New()
	log := logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Writer: &buf})
	return NewService(store, log), store, &buf
}

func TestService_LoadAbsent(t *testing.T) {
	svc, _, _ := newTestService(t)

	var out []item
	found, err := svc.Load(context.Background(), NamespaceEvents, &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestService_LoadCorrupt(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.Put(string(NamespaceEvents), []byte(`{not json`))

	var out []item
	found, err := svc.Load(context.Background(), NamespaceEvents, &out)
	require.ErrorIs(t, err, ErrCorrupt)
	assert.True(t, found)
}

func TestService_LoadReadFailure(t *testing.T) {
	svc, store, _ := newTestService(t)
	store.FailReads(true)

	var out []item
	_, err := svc.Load(context.Background(), NamespaceEvents, &out)
	require.ErrorIs(t, err, kvtest.ErrInjectedRead)
}

func TestService_SaveWritesJSON(t *testing.T) {
	svc, store, _ := newTestService(t)

	require.NoError(t, svc.Save(context.Background(), NamespaceDiaries, []item{{ID: "a"}}))

	raw, ok := store.Raw(string(NamespaceDiaries))
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(raw))
}

func TestSlot_GetReturnsDefaultWhenAbsent(t *testing.T) {
	svc, _, buf := newTestService(t)
	slot := NewSlot[[]item](svc, NamespaceEvents)

	got := slot.Get(context.Background(), []item{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Zero(t, buf.Len(), "absence is not an error")
}

func TestSlot_GetFallsBackAndLogsOnCorruption(t *testing.T) {
	svc, store, buf := newTestService(t)
	store.Put(string(NamespaceEvents), []byte(`[{"id": 1}]`))
	slot := NewSlot[[]item](svc, NamespaceEvents)

	got := slot.Get(context.Background(), []item{})
	assert.Empty(t, got)
	assert.Contains(t, buf.String(), "error reading namespace")
	assert.Contains(t, buf.String(), "echo_events")
}

func TestSlot_SetSwallowsWriteFailure(t *testing.T) {
	svc, store, buf := newTestService(t)
	store.FailWrites(true)
	slot := NewSlot[[]item](svc, NamespaceEvents)

	assert.NotPanics(t, func() { slot.Set(context.Background(), []item{{ID: "a"}}) })
	assert.Contains(t, buf.String(), "error writing namespace")

	_, ok := store.Raw(string(NamespaceEvents))
	assert.False(t, ok)
}

func TestSlot_RoundTripAndRemove(t *testing.T) {
	svc, store, buf := newTestService(t)
	slot := NewSlot[[]item](svc, NamespaceEvents)
	ctx := context.Background()

	slot.Set(ctx, []item{{ID: "a", Note: "x"}, {ID: "b"}})
	assert.Equal(t, []item{{ID: "a", Note: "x"}, {ID: "b"}}, slot.Get(ctx, nil))

	slot.Remove(ctx)
	assert.Nil(t, slot.Get(ctx, nil))

	store.FailWrites(true)
	slot.Remove(ctx)
	assert.Contains(t, buf.String(), "error removing namespace")
}

func TestSlot_NamespacesAreIndependent(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	events := NewSlot[[]item](svc, NamespaceEvents)
	diaries := NewSlot[[]item](svc, NamespaceDiaries)

	events.Set(ctx, []item{{ID: "e"}})
	diaries.Set(ctx, []item{{ID: "d"}})
	events.Remove(ctx)

	assert.Nil(t, events.Get(ctx, nil))
	assert.Equal(t, []item{{ID: "d"}}, diaries.Get(ctx, nil))
}
