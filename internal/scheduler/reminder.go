package scheduler

import (
	"fmt"
	"sync"
	"time"

	"echo-journal/internal/domain/events"
	"echo-journal/internal/domain/settings"
	"echo-journal/internal/platform/logger"

	"github.com/robfig/cron/v3"
)

// TodaySource es lo único que el recordatorio necesita del store.
type TodaySource interface {
	TodayEvents() []events.Event
}

// Reminder instala (o quita) una única entrada diaria según notifications.
type Reminder struct {
	mu      sync.Mutex
	cron    *cron.Cron
	entry   cron.EntryID
	expr    string
	running bool

	source TodaySource
	log    logger.Logger
}

func NewReminder(source TodaySource, loc *time.Location, log logger.Logger) *Reminder {
	if loc == nil {
		loc = time.Local
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Reminder{
		cron:   cron.New(cron.WithLocation(loc)),
		source: source,
		log:    log.With(map[string]any{"component": "reminder"}),
	}
}

// CronExpr arma la expresión cron para HH:MM.
func CronExpr(reminderTime string) (string, error) {
	h, m, err := settings.ParseReminderTime(reminderTime)
	if err != nil {
		return "", fmt.Errorf("reminder time %q: %w", reminderTime, err)
	}
	return fmt.Sprintf("%d %d * * *", m, h), nil
}

// Apply deja el cron alineado con s. Se puede registrar como settings.Observer.
func (r *Reminder) Apply(s settings.UserSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !s.Notifications.DailyReminder {
		r.removeLocked()
		return nil
	}

	at := s.Notifications.ReminderTime
	if at == "" {
		at = settings.DefaultReminderTime
	}
	expr, err := CronExpr(at)
	if err != nil {
		return err
	}
	if r.entry != 0 && expr == r.expr {
		return nil
	}

	r.removeLocked()
	id, err := r.cron.AddFunc(expr, r.fire)
	if err != nil {
		return fmt.Errorf("schedule reminder: %w", err)
	}
	r.entry = id
	r.expr = expr

	r.log.Info("daily reminder scheduled", map[string]any{"at": at})
	return nil
}

// Next devuelve la próxima ejecución; false si no hay recordatorio activo
// o si el cron todavía no arrancó.
func (r *Reminder) Next() (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entry == 0 {
		return time.Time{}, false
	}
	next := r.cron.Entry(r.entry).Next
	return next, !next.IsZero()
}

// Active indica si hay una entrada instalada.
func (r *Reminder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entry != 0
}

func (r *Reminder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}
	r.cron.Start()
	r.running = true
}

// Stop espera a que termine un job en curso.
func (r *Reminder) Stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	<-r.cron.Stop().Done()
}

func (r *Reminder) removeLocked() {
	if r.entry == 0 {
		return
	}
	r.cron.Remove(r.entry)
	r.entry = 0
	r.expr = ""
	r.log.Info("daily reminder removed", nil)
}

func (r *Reminder) fire() {
	n := len(r.source.TodayEvents())
	r.log.Info("daily reminder: time to write your diary", map[string]any{"todayEvents": n})
}
