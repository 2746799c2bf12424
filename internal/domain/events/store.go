package events

import (
	"context"
	"slices"
	"sync"
	"time"

	"echo-journal/internal/platform/logger"
	"echo-journal/internal/storage"

	"github.com/google/uuid"
)

// Store es el dueño de la colección de eventos en memoria.
// Las lecturas salen de memoria; cada mutación actualiza memoria y luego
// manda el snapshot completo al persister (sin esperar la escritura).
type Store struct {
	mu     sync.RWMutex
	events []Event
	ready  bool

	initOnce sync.Once

	slot    storage.Slot[[]Event]
	persist *storage.Persister[[]Event]

	now            func() time.Time
	loc            *time.Location
	persistTimeout time.Duration
	log            logger.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLocation fija la zona usada para calcular el día de cada evento.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) { s.persistTimeout = d }
}

func NewStore(svc *storage.Service, log logger.Logger, opts ...Option) *Store {
	if log == nil {
		log = logger.Nop()
	}
	s := &Store{
		events: []Event{},
		slot:   storage.NewSlot[[]Event](svc, storage.NamespaceEvents),
		now:    time.Now,
		loc:    time.Local,
		log:    log.With(map[string]any{"component": "events"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.persist = storage.NewPersister(s.slot, s.persistTimeout)
	return s
}

// Init carga la colección una sola vez. Llamadas siguientes no hacen nada.
// Lo que se haya mutado antes de Init queda reemplazado por lo cargado.
func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		loaded := s.slot.Get(ctx, []Event{})
		if loaded == nil {
			loaded = []Event{}
		}

		s.mu.Lock()
		s.events = loaded
		s.ready = true
		s.mu.Unlock()

		s.log.Info("events loaded", map[string]any{"count": len(loaded)})
	})
}

// IsLoading es true hasta que Init terminó; antes de eso Events() no es confiable.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ready
}

func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEvents(s.events)
}

// TodayEvents se recalcula en cada llamada.
func (s *Store) TodayEvents() []Event {
	return s.GetEventsByDate(s.today())
}

func (s *Store) AddEvent(in CreateInput) Event {
	now := s.now()

	typ := in.Type
	if typ == "" {
		typ = EventTypeEvent
	}

	e := Event{
		Timestamp: now,
		Text:      in.Text,
		Type:      typ,
		AudioURL:  in.AudioURL,
		AudioText: in.AudioText,
		Date:      DateOf(now, s.loc),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.NewString()
	for s.indexLocked(e.ID) >= 0 {
		e.ID = uuid.NewString()
	}

	s.events = append(s.events, e)
	s.changedLocked()

	return e.clone()
}

// UpdateEvent devuelve false si id no existe; en ese caso no escribe nada.
func (s *Store) UpdateEvent(id string, in UpdateInput) (Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Event{}, false
	}

	updated := in.Apply(s.events[i])

	// updatedAt nunca retrocede aunque el reloj lo haga
	now := s.now()
	if now.Before(updated.UpdatedAt) {
		now = updated.UpdatedAt
	}
	if now.Before(updated.CreatedAt) {
		now = updated.CreatedAt
	}
	updated.UpdatedAt = now

	s.events[i] = updated
	s.changedLocked()

	return updated.clone(), true
}

func (s *Store) DeleteEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	s.events = slices.Delete(s.events, i, i+1)
	s.changedLocked()
	return true
}

func (s *Store) GetEvent(id string) (Event, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Event{}, false
	}
	return s.events[i].clone(), true
}

// GetEventsByDate filtra por igualdad de Date, en orden de inserción.
func (s *Store) GetEventsByDate(date string) []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, 0)
	for _, e := range s.events {
		if e.Date == date {
			out = append(out, e.clone())
		}
	}
	return out
}

func (s *Store) ClearTodayEvents() {
	today := s.today()

	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.events)
	s.events = slices.DeleteFunc(s.events, func(e Event) bool {
		return e.Date == today
	})
	s.changedLocked()

	s.log.Debug("cleared today events", map[string]any{
		"date":    today,
		"removed": before - len(s.events),
	})
}

// Flush espera a que el último snapshot se haya escrito.
func (s *Store) Flush(ctx context.Context) error {
	return s.persist.Flush(ctx)
}

// Close escribe lo pendiente y detiene el persister. El store no se usa después.
func (s *Store) Close(ctx context.Context) error {
	return s.persist.Close(ctx)
}

func (s *Store) today() string {
	return DateOf(s.now(), s.loc)
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.events, func(e Event) bool { return e.ID == id })
}

// changedLocked se llama con s.mu tomado para que el orden de los
// snapshots enviados sea el orden de las mutaciones.
func (s *Store) changedLocked() {
	if !s.ready {
		return
	}
	s.persist.Submit(cloneEvents(s.events))
}
