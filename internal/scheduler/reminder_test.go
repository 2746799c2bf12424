package scheduler

import (
	"bytes"
	"testing"
	"time"

	"echo-journal/internal/domain/events"
	"echo-journal/internal/domain/settings"
	"echo-journal/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSource struct{ n int }

func (f fakeSource) TodayEvents() []events.Event { return make([]events.Event, f.n) }

func withReminder(at string) settings.UserSettings {
	s := settings.Defaults()
	s.Notifications.DailyReminder = true
	s.Notifications.ReminderTime = at
	return s
}

func TestCronExpr(t *testing.T) {
	got, err := CronExpr("07:05")
	require.NoError(t, err)
	assert.Equal(t, "5 7 * * *", got)

	_, err = CronExpr("7pm")
	assert.ErrorIs(t, err, settings.ErrInvalidInput)
}

func TestReminder_ApplyInstallsAndRemoves(t *testing.T) {
	r := NewReminder(fakeSource{}, time.UTC, logger.Nop())
	r.Start()
	defer r.Stop()

	require.NoError(t, r.Apply(withReminder("21:30")))
	assert.True(t, r.Active())

	next, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 21, next.In(time.UTC).Hour())
	assert.Equal(t, 30, next.In(time.UTC).Minute())

	require.NoError(t, r.Apply(settings.Defaults()))
	assert.False(t, r.Active())
	_, ok = r.Next()
	assert.False(t, ok)
}

func TestReminder_ApplyReschedules(t *testing.T) {
	r := NewReminder(fakeSource{}, time.UTC, logger.Nop())
	r.Start()
	defer r.Stop()

	require.NoError(t, r.Apply(withReminder("08:00")))
	require.NoError(t, r.Apply(withReminder("08:00")))
	require.NoError(t, r.Apply(withReminder("09:15")))

	assert.Len(t, r.cron.Entries(), 1)
	next, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 9, next.Hour())
	assert.Equal(t, 15, next.Minute())
}

func TestReminder_ApplyEmptyTimeUsesDefault(t *testing.T) {
	r := NewReminder(fakeSource{}, time.UTC, logger.Nop())

	require.NoError(t, r.Apply(withReminder("")))
	assert.Equal(t, "0 21 * * *", r.expr)
}

func TestReminder_ApplyInvalidKeepsPrevious(t *testing.T) {
	r := NewReminder(fakeSource{}, time.UTC, logger.Nop())

	require.NoError(t, r.Apply(withReminder("06:00")))
	assert.Error(t, r.Apply(withReminder("6")))
	assert.Equal(t, "0 6 * * *", r.expr)
}

func TestReminder_FireLogsTodayCount(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Level: logger.Info, Format: logger.FormatJSON, Writer: &buf})
	r := NewReminder(fakeSource{n: 3}, time.UTC, log)

	r.fire()

	assert.Contains(t, buf.String(), `"todayEvents":3`)
	assert.Contains(t, buf.String(), `"component":"reminder"`)
}
