package diaries

import (
	"context"
	"strings"
	"testing"
	"time"

	"echo-journal/internal/platform/logger"
	"echo-journal/internal/ports/kv/kvtest"
	"echo-journal/internal/storage"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestStore(t *testing.T, kvs *kvtest.Store, now time.Time) *Store {
	t.Helper()
	s := NewStore(storage.NewService(kvs, logger.Nop()), logger.Nop(), time.UTC, time.Second)
	s.now = func() time.Time { return now }
	t.Cleanup(func() { require.NoError(t, s.Close(context.Background())) })
	s.Init(context.Background())
	return s
}

var day = time.Date(2025, 12, 22, 21, 0, 0, 0, time.UTC)

func TestStore_AddDiary_Defaults(t *testing.T) {
	s := newTestStore(t, kvtest.New(), day)

	d := s.AddDiary(CreateInput{Title: "Monday", Content: "A calm day."})

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, MoodNeutral, d.Mood)
	assert.Equal(t, StyleWarm, d.Style)
	assert.Equal(t, "2025-12-22", d.Date)
	assert.Equal(t, "A calm day.", d.Preview)
	assert.NotNil(t, d.Tags)
	assert.NotNil(t, d.EventIDs)
	assert.True(t, d.CreatedAt.Equal(d.UpdatedAt))
}

func TestStore_AddDiary_ExplicitDate(t *testing.T) {
	s := newTestStore(t, kvtest.New(), day)

	d := s.AddDiary(CreateInput{Title: "t", Content: "c", Date: "2025-12-01", Style: StylePoetic})
	assert.Equal(t, "2025-12-01", d.Date)
	assert.Equal(t, StylePoetic, d.Style)

	assert.Len(t, s.GetDiariesByDate("2025-12-01"), 1)
	assert.Empty(t, s.GetDiariesByDate("2025-12-22"))
}

func TestStore_UpdateDiary_RecomputesPreview(t *testing.T) {
	s := newTestStore(t, kvtest.New(), day)
	d := s.AddDiary(CreateInput{Title: "t", Content: "short"})

	long := strings.Repeat("word ", 40)
	mood := MoodHappy
	tags := []string{"family"}

	updated, ok := s.UpdateDiary(d.ID, UpdateInput{Content: &long, Mood: &mood, Tags: &tags})
	require.True(t, ok)

	assert.Equal(t, MoodHappy, updated.Mood)
	assert.Equal(t, []string{"family"}, updated.Tags)
	assert.True(t, strings.HasSuffix(updated.Preview, "…"))
	assert.Equal(t, "t", updated.Title)

	_, ok = s.UpdateDiary("missing", UpdateInput{Title: &long})
	assert.False(t, ok)
}

func TestStore_DeleteDiary(t *testing.T) {
	s := newTestStore(t, kvtest.New(), day)
	d := s.AddDiary(CreateInput{Title: "t", Content: "c"})

	assert.True(t, s.DeleteDiary(d.ID))
	assert.False(t, s.DeleteDiary(d.ID))
	assert.Empty(t, s.Diaries())
}

func TestStore_RoundTrip(t *testing.T) {
	kvs := kvtest.New()
	s := NewStore(storage.NewService(kvs, logger.Nop()), logger.Nop(), time.UTC, time.Second)
	s.now = func() time.Time { return day }
	s.Init(context.Background())

	s.AddDiary(CreateInput{Title: "a", Content: "b", Tags: []string{"x"}, EventIDs: []string{"e1"}})
	want := s.Diaries()
	require.NoError(t, s.Close(context.Background()))

	fresh := newTestStore(t, kvs, day)
	if diff := cmp.Diff(want, fresh.Diaries()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", Preview("  a \n b "))

	long := strings.Repeat("é", 150)
	p := Preview(long)
	assert.Equal(t, strings.Repeat("é", 100)+"…", p)
}
