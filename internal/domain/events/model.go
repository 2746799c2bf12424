package events

import "time"

// InterviewQA es un par pregunta/respuesta de una entrevista.
// El store solo lo guarda y lo devuelve.
type InterviewQA struct {
	Question  string    `json:"question" yaml:"question"`
	Options   []string  `json:"options,omitempty" yaml:"options,omitempty"`
	Answer    string    `json:"answer" yaml:"answer"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// Event es una entrada del día registrada por el usuario.
type Event struct {
	ID        string    `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Text      string    `json:"text" yaml:"text"`
	Type      EventType `json:"type" yaml:"type"`

	AudioURL  string `json:"audioUrl,omitempty" yaml:"audioUrl,omitempty"`
	AudioText string `json:"audioText,omitempty" yaml:"audioText,omitempty"`

	InterviewHistory []InterviewQA `json:"interviewHistory,omitempty" yaml:"interviewHistory,omitempty"`

	// Date es el día local (YYYY-MM-DD) en que se creó. No se recalcula.
	Date string `json:"date" yaml:"date"`

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

func (e Event) clone() Event {
	e.InterviewHistory = cloneHistory(e.InterviewHistory)
	return e
}

func cloneHistory(in []InterviewQA) []InterviewQA {
	if in == nil {
		return nil
	}
	out := make([]InterviewQA, len(in))
	for i, qa := range in {
		if qa.Options != nil {
			qa.Options = append([]string(nil), qa.Options...)
		}
		out[i] = qa
	}
	return out
}

func cloneEvents(in []Event) []Event {
	out := make([]Event, len(in))
	for i, e := range in {
		out[i] = e.clone()
	}
	return out
}
