package calendarview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/theme"
)

// EventItem wraps an event so it can be used in a bubbles/list.
type EventItem struct {
	Event model.Event
}

// FilterValue returns the string used for fuzzy filtering.
func (i EventItem) FilterValue() string { return i.Event.Title }

// Title returns the event title for the list.
func (i EventItem) Title() string { return i.Event.Title }

// EventDelegate implements list.ItemDelegate for chronology rows.
type EventDelegate struct{}

// Height returns the number of lines each item takes.
func (d EventDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d EventDelegate) Spacing() int { return 0 }

// Update handles per-item messages.
func (d EventDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single event line.
func (d EventDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ei, ok := item.(EventItem)
	if !ok {
		return
	}
	e := ei.Event

	statusBadge := theme.EventStatusStyle(e.Status).Render(string(e.Status))
	date := e.Date.Format("Jan 02")
	if e.Time != "" {
		date += " " + e.Time
	}

	line := fmt.Sprintf(
		"%s %s  %s  %s",
		statusBadge,
		theme.HelpStyle.Render(date),
		e.Title,
		theme.HelpStyle.Render(string(e.Type)),
	)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}
