package events

// Consumer es lo que ve la capa de UI (HTTP, CLI): snapshot de eventos
// más las mutaciones. No expone cómo se persiste.
type Consumer interface {
	Events() []Event
	TodayEvents() []Event
	IsLoading() bool

	AddEvent(in CreateInput) Event
	UpdateEvent(id string, in UpdateInput) (Event, bool)
	DeleteEvent(id string) bool
	GetEvent(id string) (Event, bool)
	GetEventsByDate(date string) []Event
	ClearTodayEvents()
}

var _ Consumer = (*Store)(nil)
