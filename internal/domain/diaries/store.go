package diaries

import (
	"context"
	"slices"
	"sync"
	"time"

	"echo-journal/internal/domain/events"
	"echo-journal/internal/platform/logger"
	"echo-journal/internal/storage"

	"github.com/google/uuid"
)

type CreateInput struct {
	Title            string
	Content          string
	Tags             []string
	Mood             Mood // vacío => neutral
	EventIDs         []string
	InterviewHistory []events.InterviewQA
	Style            Style  // vacío => warm
	Date             string // vacío => hoy
}

// UpdateInput es un patch: nil = no tocar.
type UpdateInput struct {
	Title   *string
	Content *string
	Tags    *[]string
	Mood    *Mood
}

// Apply mezcla el patch. Si cambia el contenido se recalcula el preview.
func (in UpdateInput) Apply(d Diary) Diary {
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Content != nil {
		d.Content = *in.Content
		d.Preview = Preview(d.Content)
	}
	if in.Tags != nil {
		d.Tags = cloneStrings(*in.Tags)
		if d.Tags == nil {
			d.Tags = []string{}
		}
	}
	if in.Mood != nil {
		d.Mood = *in.Mood
	}
	return d
}

// Store mantiene los diarios en memoria con la misma semántica que events.Store.
type Store struct {
	mu      sync.RWMutex
	diaries []Diary
	ready   bool

	initOnce sync.Once

	slot    storage.Slot[[]Diary]
	persist *storage.Persister[[]Diary]

	now func() time.Time
	loc *time.Location
	log logger.Logger
}

func NewStore(svc *storage.Service, log logger.Logger, loc *time.Location, persistTimeout time.Duration) *Store {
	if log == nil {
		log = logger.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	slot := storage.NewSlot[[]Diary](svc, storage.NamespaceDiaries)
	return &Store{
		diaries: []Diary{},
		slot:    slot,
		persist: storage.NewPersister(slot, persistTimeout),
		now:     time.Now,
		loc:     loc,
		log:     log.With(map[string]any{"component": "diaries"}),
	}
}

func (s *Store) Init(ctx context.Context) {
	s.initOnce.Do(func() {
		loaded := s.slot.Get(ctx, []Diary{})
		if loaded == nil {
			loaded = []Diary{}
		}

		s.mu.Lock()
		s.diaries = loaded
		s.ready = true
		s.mu.Unlock()

		s.log.Info("diaries loaded", map[string]any{"count": len(loaded)})
	})
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.ready
}

func (s *Store) Diaries() []Diary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneDiaries(s.diaries)
}

func (s *Store) AddDiary(in CreateInput) Diary {
	now := s.now()

	mood := in.Mood
	if mood == "" {
		mood = MoodNeutral
	}
	style := in.Style
	if style == "" {
		style = StyleWarm
	}
	date := in.Date
	if date == "" {
		date = events.DateOf(now, s.loc)
	}
	tags := cloneStrings(in.Tags)
	if tags == nil {
		tags = []string{}
	}
	eventIDs := cloneStrings(in.EventIDs)
	if eventIDs == nil {
		eventIDs = []string{}
	}

	d := Diary{
		Title:            in.Title,
		Content:          in.Content,
		Preview:          Preview(in.Content),
		Tags:             tags,
		Mood:             mood,
		EventIDs:         eventIDs,
		InterviewHistory: in.InterviewHistory,
		Style:            style,
		Date:             date,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	d = d.clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	d.ID = uuid.NewString()
	for s.indexLocked(d.ID) >= 0 {
		d.ID = uuid.NewString()
	}

	s.diaries = append(s.diaries, d)
	s.changedLocked()

	return d.clone()
}

func (s *Store) UpdateDiary(id string, in UpdateInput) (Diary, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Diary{}, false
	}

	updated := in.Apply(s.diaries[i])
	now := s.now()
	if now.Before(updated.UpdatedAt) {
		now = updated.UpdatedAt
	}
	updated.UpdatedAt = now

	s.diaries[i] = updated
	s.changedLocked()

	return updated.clone(), true
}

func (s *Store) DeleteDiary(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.diaries = slices.Delete(s.diaries, i, i+1)
	s.changedLocked()
	return true
}

func (s *Store) GetDiary(id string) (Diary, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Diary{}, false
	}
	return s.diaries[i].clone(), true
}

func (s *Store) GetDiariesByDate(date string) []Diary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Diary, 0)
	for _, d := range s.diaries {
		if d.Date == date {
			out = append(out, d.clone())
		}
	}
	return out
}

func (s *Store) Flush(ctx context.Context) error {
	return s.persist.Flush(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.persist.Close(ctx)
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.diaries, func(d Diary) bool { return d.ID == id })
}

func (s *Store) changedLocked() {
	if !s.ready {
		return
	}
	s.persist.Submit(cloneDiaries(s.diaries))
}
