package echoapi

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"echo-journal/internal/adapters/storage/memory"
	"echo-journal/internal/domain/events"
	"echo-journal/internal/platform/logger"
	"echo-journal/internal/router"
	"echo-journal/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, token string) *Client {
	t.Helper()
	ctx := context.Background()

	svc := storage.NewService(memory.NewKVStore(), logger.Nop())
	evs := events.NewStore(svc, logger.Nop(), events.WithLocation(time.UTC))
	evs.Init(ctx)

	ts := httptest.NewServer(router.NewRouter(router.Options{
		Events:   evs,
		Log:      logger.Nop(),
		Location: time.UTC,
		APIToken: token,
	}))
	t.Cleanup(func() {
		ts.Close()
		_ = evs.Close(ctx)
	})

	c, err := New(ts.URL, token, time.Second)
	require.NoError(t, err)
	return c
}

func TestClient_EventLifecycle(t *testing.T) {
	c := newTestClient(t, "tok")
	ctx := context.Background()

	e, err := c.AddEvent(ctx, events.CreateInput{Text: "Morning run", AudioText: "ran 5k"})
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Equal(t, events.EventTypeEvent, e.Type)

	today, err := c.TodayEvents(ctx)
	require.NoError(t, err)
	require.Len(t, today, 1)

	byDate, err := c.EventsByDate(ctx, e.Date)
	require.NoError(t, err)
	assert.Len(t, byDate, 1)

	text := "Evening run"
	updated, ok, err := c.UpdateEvent(ctx, e.ID, events.UpdateInput{Text: &text})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Evening run", updated.Text)
	assert.Equal(t, "ran 5k", updated.AudioText)

	got, ok, err := c.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, updated.Text, got.Text)

	ok, err = c.DeleteEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DeleteEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = c.GetEvent(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_ClearTodayAndExport(t *testing.T) {
	c := newTestClient(t, "")
	ctx := context.Background()

	_, err := c.AddEvent(ctx, events.CreateInput{Text: "Tea"})
	require.NoError(t, err)

	out, err := c.Export(ctx, "", "yaml")
	require.NoError(t, err)
	assert.Contains(t, string(out), "text: Tea")

	require.NoError(t, c.ClearTodayEvents(ctx))

	all, err := c.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestClient_ValidationErrorsSurface(t *testing.T) {
	c := newTestClient(t, "")

	_, err := c.AddEvent(context.Background(), events.CreateInput{Text: "   "})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "text required"))
}

func TestClient_WrongToken(t *testing.T) {
	c := newTestClient(t, "right")
	c.http.Token = "wrong"

	_, err := c.Events(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}
