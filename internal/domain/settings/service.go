package settings

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"echo-journal/internal/domain/diaries"
	"echo-journal/internal/platform/logger"
	"echo-journal/internal/storage"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// ReminderTimeLayout es el formato de notifications.reminderTime.
const ReminderTimeLayout = "15:04"

// UpdateInput es un patch: nil = no tocar.
type UpdateInput struct {
	APIKey            *string
	Theme             *Theme
	Language          *string
	SpeechLanguage    *string
	AutoSave          *bool
	DefaultDiaryStyle *diaries.Style
	DailyReminder     *bool
	ReminderTime      *string
}

func (in UpdateInput) validate() error {
	if in.Theme != nil && !in.Theme.Valid() {
		return ErrInvalidInput
	}
	if in.DefaultDiaryStyle != nil && !in.DefaultDiaryStyle.Valid() {
		return ErrInvalidInput
	}
	if in.Language != nil && strings.TrimSpace(*in.Language) == "" {
		return ErrInvalidInput
	}
	if in.SpeechLanguage != nil && strings.TrimSpace(*in.SpeechLanguage) == "" {
		return ErrInvalidInput
	}
	if in.ReminderTime != nil {
		if _, _, err := ParseReminderTime(*in.ReminderTime); err != nil {
			return err
		}
	}
	return nil
}

func (in UpdateInput) apply(s UserSettings) UserSettings {
	if in.APIKey != nil {
		s.APIKey = *in.APIKey
	}
	if in.Theme != nil {
		s.Theme = *in.Theme
	}
	if in.Language != nil {
		s.Language = strings.TrimSpace(*in.Language)
	}
	if in.SpeechLanguage != nil {
		s.SpeechLanguage = strings.TrimSpace(*in.SpeechLanguage)
	}
	if in.AutoSave != nil {
		s.AutoSave = *in.AutoSave
	}
	if in.DefaultDiaryStyle != nil {
		s.DefaultDiaryStyle = *in.DefaultDiaryStyle
	}
	if in.DailyReminder != nil {
		s.Notifications.DailyReminder = *in.DailyReminder
	}
	if in.ReminderTime != nil {
		s.Notifications.ReminderTime = *in.ReminderTime
	}
	return s
}

// ParseReminderTime valida HH:MM (24h) y devuelve hora y minuto.
func ParseReminderTime(v string) (hour, minute int, err error) {
	if len(v) != len(ReminderTimeLayout) {
		return 0, 0, ErrInvalidInput
	}
	t, err := time.Parse(ReminderTimeLayout, v)
	if err != nil {
		return 0, 0, ErrInvalidInput
	}
	return t.Hour(), t.Minute(), nil
}

// Observer recibe la configuración nueva después de cada cambio.
type Observer func(UserSettings)

type Service struct {
	mu        sync.Mutex
	svc       *storage.Service
	slot      storage.Slot[UserSettings]
	observers []Observer
	log       logger.Logger
}

func NewService(svc *storage.Service, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		svc:  svc,
		slot: storage.NewSlot[UserSettings](svc, storage.NamespaceSettings),
		log:  log.With(map[string]any{"component": "settings"}),
	}
}

// OnChange registra un observer. Se llama fuera del lock.
func (s *Service) OnChange(fn Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

// Get devuelve lo guardado mezclado sobre Defaults(): campos ausentes toman el default.
func (s *Service) Get(ctx context.Context) UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (UserSettings, error) {
	if err := in.validate(); err != nil {
		return UserSettings{}, err
	}

	s.mu.Lock()
	updated := in.apply(s.loadLocked(ctx))
	s.slot.Set(ctx, updated)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	s.notify(observers, updated)
	return updated, nil
}

// Reset borra lo guardado; el próximo Get devuelve los defaults.
func (s *Service) Reset(ctx context.Context) UserSettings {
	s.mu.Lock()
	s.slot.Remove(ctx)
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	def := Defaults()
	s.notify(observers, def)
	return def
}

func (s *Service) loadLocked(ctx context.Context) UserSettings {
	out := Defaults()
	if _, err := s.svc.Load(ctx, s.slot.Namespace(), &out); err != nil {
		s.log.Error("error reading settings, using defaults", map[string]any{"error": err})
		return Defaults()
	}
	return out
}

func (s *Service) notify(observers []Observer, v UserSettings) {
	for _, fn := range observers {
		fn(v)
	}
}
