package events

import "time"

type EventType string

const (
	EventTypeEvent     EventType = "event"
	EventTypeInterview EventType = "interview"
)

func (t EventType) Valid() bool {
	switch t {
	case EventTypeEvent, EventTypeInterview:
		return true
	default:
		return false
	}
}

// DateLayout es el formato de los buckets por día.
const DateLayout = "2006-01-02"

// DateOf devuelve el día calendario de t en loc.
func DateOf(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DateLayout)
}

// ValidDate reporta si s es YYYY-MM-DD.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

type CreateInput struct {
	Text      string
	Type      EventType // vacío => "event"
	AudioURL  string
	AudioText string
}

// UpdateInput es un patch: nil = no tocar.
type UpdateInput struct {
	Text             *string
	AudioURL         *string
	AudioText        *string
	InterviewHistory *[]InterviewQA
}

func (in UpdateInput) Empty() bool {
	return in.Text == nil && in.AudioURL == nil && in.AudioText == nil && in.InterviewHistory == nil
}

// Apply mezcla el patch sobre e campo por campo. ID, Type, Date, Timestamp
// y CreatedAt no son parcheables.
func (in UpdateInput) Apply(e Event) Event {
	if in.Text != nil {
		e.Text = *in.Text
	}
	if in.AudioURL != nil {
		e.AudioURL = *in.AudioURL
	}
	if in.AudioText != nil {
		e.AudioText = *in.AudioText
	}
	if in.InterviewHistory != nil {
		e.InterviewHistory = cloneHistory(*in.InterviewHistory)
	}
	return e
}
