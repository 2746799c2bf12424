package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
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

func localEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("STORAGE_DRIVER", "file")
	t.Setenv("DATA_DIR", dir)
	t.Setenv("ECHO_TIMEZONE", "UTC")
	t.Setenv("ECHO_SERVER", "")
	t.Setenv("ECHO_API_TOKEN", "")
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := run(args, &out, &errOut)
	return out.String(), err
}

func addJSON(t *testing.T, args ...string) events.Event {
	t.Helper()
	out, err := runCLI(t, append([]string{"--json", "add"}, args...)...)
	require.NoError(t, err)
	var e events.Event
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	return e
}

func TestCLI_AddPersistsAcrossRuns(t *testing.T) {
	dir := localEnv(t)

	e := addJSON(t, "Walked", "to", "the", "park")
	assert.Equal(t, "Walked to the park", e.Text)
	assert.Equal(t, events.EventTypeEvent, e.Type)

	_, err := os.Stat(filepath.Join(dir, "echo_events.json"))
	require.NoError(t, err)

	out, err := runCLI(t, "--json", "list")
	require.NoError(t, err)
	var list []events.Event
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 1)
	assert.Equal(t, e.ID, list[0].ID)

	out, err = runCLI(t, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "Walked to the park")
	assert.Contains(t, out, e.ID[:8])
}

func TestCLI_EditShowRm(t *testing.T) {
	localEnv(t)
	e := addJSON(t, "--audio-text", "raw", "First draft")

	out, err := runCLI(t, "--json", "edit", e.ID, "--text", "Final")
	require.NoError(t, err)
	var edited events.Event
	require.NoError(t, json.Unmarshal([]byte(out), &edited))
	assert.Equal(t, "Final", edited.Text)
	assert.Equal(t, "raw", edited.AudioText)

	out, err = runCLI(t, "show", e.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "Final")
	assert.Contains(t, out, "raw")

	_, err = runCLI(t, "rm", e.ID)
	require.NoError(t, err)

	_, err = runCLI(t, "show", e.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestCLI_Validation(t *testing.T) {
	localEnv(t)

	_, err := runCLI(t, "add", "   ")
	assert.ErrorIs(t, err, errBlankText)

	_, err = runCLI(t, "add", "--type", "memo", "hi")
	assert.ErrorContains(t, err, "unknown type")

	_, err = runCLI(t, "list", "--date", "2025/12/22")
	assert.ErrorContains(t, err, "YYYY-MM-DD")

	_, err = runCLI(t, "edit", "whatever")
	assert.ErrorContains(t, err, "nothing to change")

	_, err = runCLI(t, "edit", "whatever", "--text", " ")
	assert.ErrorIs(t, err, errBlankText)

	_, err = runCLI(t, "clear-today")
	assert.ErrorContains(t, err, "--yes")
}

func TestCLI_ClearTodayAndExport(t *testing.T) {
	localEnv(t)
	addJSON(t, "Coffee")

	out, err := runCLI(t, "export", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "text: Coffee")

	_, err = runCLI(t, "clear-today", "--yes")
	require.NoError(t, err)

	out, err = runCLI(t, "today")
	require.NoError(t, err)
	assert.Contains(t, out, "no events")
}

func TestCLI_RemoteMode(t *testing.T) {
	localEnv(t)
	ctx := context.Background()

	svc := storage.NewService(memory.NewKVStore(), logger.Nop())
	evs := events.NewStore(svc, logger.Nop(), events.WithLocation(time.UTC))
	evs.Init(ctx)
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Events:   evs,
		Log:      logger.Nop(),
		APIToken: "tok",
	}))
	defer func() {
		ts.Close()
		_ = evs.Close(ctx)
	}()

	_, err := runCLI(t, "--server", ts.URL, "--token", "tok", "add", "From", "remote")
	require.NoError(t, err)

	require.Len(t, evs.Events(), 1)
	assert.Equal(t, "From remote", evs.Events()[0].Text)

	_, err = runCLI(t, "--server", ts.URL, "--token", "bad", "list")
	assert.ErrorContains(t, err, "401")
}
