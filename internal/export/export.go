// Package export vuelca un día del diario (eventos + diarios) a JSON o YAML.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"echo-journal/internal/domain/diaries"
	"echo-journal/internal/domain/events"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var ErrUnknownFormat = errors.New("unknown export format")

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type Day struct {
	Date    string          `json:"date" yaml:"date"`
	Events  []events.Event  `json:"events" yaml:"events"`
	Diaries []diaries.Diary `json:"diaries,omitempty" yaml:"diaries,omitempty"`
}

func Write(w io.Writer, format Format, day Day) error {
	if day.Events == nil {
		day.Events = []events.Event{}
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(day); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(day); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
