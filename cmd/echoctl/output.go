package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"echo-journal/internal/domain/events"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const maxTextWidth = 60

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	dimStyle    = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(11)
)

func (a *app) printEvents(w io.Writer, list []events.Event) error {
	if a.asJSON {
		return writeJSON(w, list)
	}
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "no events")
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{
			shortID(e.ID),
			e.Date,
			e.Timestamp.In(a.loc).Format("15:04"),
			string(e.Type),
			truncate(e.Text, maxTextWidth),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "DATE", "TIME", "TYPE", "TEXT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return dimStyle
			default:
				return cellStyle
			}
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func (a *app) printEvent(w io.Writer, e events.Event) error {
	if a.asJSON {
		return writeJSON(w, e)
	}

	lines := []string{
		labelStyle.Render("id") + e.ID,
		labelStyle.Render("date") + e.Date + " " + e.Timestamp.In(a.loc).Format("15:04"),
		labelStyle.Render("type") + string(e.Type),
		labelStyle.Render("text") + e.Text,
	}
	if e.AudioURL != "" {
		lines = append(lines, labelStyle.Render("audio")+e.AudioURL)
	}
	if e.AudioText != "" {
		lines = append(lines, labelStyle.Render("transcript")+e.AudioText)
	}
	for i, qa := range e.InterviewHistory {
		lines = append(lines, labelStyle.Render(fmt.Sprintf("q%d", i+1))+qa.Question+" → "+qa.Answer)
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}
