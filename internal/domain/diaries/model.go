package diaries

import (
	"strings"
	"time"
	"unicode/utf8"

	"echo-journal/internal/domain/events"
)

// Mood define el ánimo asociado al diario.
// @Enum happy, sad, calm, excited, anxious, neutral
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodCalm    Mood = "calm"
	MoodExcited Mood = "excited"
	MoodAnxious Mood = "anxious"
	MoodNeutral Mood = "neutral"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodSad, MoodCalm, MoodExcited, MoodAnxious, MoodNeutral:
		return true
	default:
		return false
	}
}

// Style define el tono de escritura del diario.
// @Enum warm, poetic, simple, reflective
type Style string

const (
	StyleWarm       Style = "warm"
	StylePoetic     Style = "poetic"
	StyleSimple     Style = "simple"
	StyleReflective Style = "reflective"
)

func (s Style) Valid() bool {
	switch s {
	case StyleWarm, StylePoetic, StyleSimple, StyleReflective:
		return true
	default:
		return false
	}
}

// Diary es el texto armado a partir de los eventos de un día.
type Diary struct {
	ID      string `json:"id" yaml:"id"`
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
	Preview string `json:"preview" yaml:"preview"`

	Tags     []string `json:"tags" yaml:"tags"`
	Mood     Mood     `json:"mood" yaml:"mood"`
	EventIDs []string `json:"eventIds" yaml:"eventIds"`

	InterviewHistory []events.InterviewQA `json:"interviewHistory,omitempty" yaml:"interviewHistory,omitempty"`

	Style Style  `json:"style" yaml:"style"`
	Date  string `json:"date" yaml:"date"` // YYYY-MM-DD

	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitzero" yaml:"updatedAt,omitempty"`
}

func (d Diary) clone() Diary {
	d.Tags = cloneStrings(d.Tags)
	d.EventIDs = cloneStrings(d.EventIDs)
	if d.InterviewHistory != nil {
		h := make([]events.InterviewQA, len(d.InterviewHistory))
		for i, qa := range d.InterviewHistory {
			if qa.Options != nil {
				qa.Options = append([]string(nil), qa.Options...)
			}
			h[i] = qa
		}
		d.InterviewHistory = h
	}
	return d
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneDiaries(in []Diary) []Diary {
	out := make([]Diary, len(in))
	for i, d := range in {
		out[i] = d.clone()
	}
	return out
}

const previewRunes = 100

// Preview corta el contenido a previewRunes runas.
func Preview(content string) string {
	content = strings.Join(strings.Fields(content), " ")
	if utf8.RuneCountInString(content) <= previewRunes {
		return content
	}
	r := []rune(content)
	return strings.TrimSpace(string(r[:previewRunes])) + "…"
}
