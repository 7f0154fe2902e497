// Package calendarview renders the event calendar in two layouts: a
// chronological listing and a month grid with per-day navigation.
package calendarview

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/theme"
	"github.com/nhle/projectflow/internal/views"
)

// EventsLoadedMsg is sent when the chronology listing has been recomputed
// from the calendar store.
type EventsLoadedMsg struct {
	Events []model.Event
}

// NewEventMsg asks the app to open the create-event form.
type NewEventMsg struct{}

// EditEventMsg asks the app to open the edit form for an event.
type EditEventMsg struct {
	ID string
}

// eventSorts is the cycle order for the Tab key.
var eventSorts = []state.EventSort{
	state.EventSortDefault,
	state.EventSortDate,
	state.EventSortType,
	state.EventSortStatus,
}

// eventStatusCycle is the order the f key steps an event's status through.
var eventStatusCycle = []model.EventStatus{
	model.EventStatusUpcoming,
	model.EventStatusInProgress,
	model.EventStatusCompleted,
}

// Model is the calendar view component.
type Model struct {
	list   list.Model
	state  *state.AppState
	keys   *keys.KeyMap
	cursor int // selected day of month in the grid, 1-based
	width  int
	height int
}

// New creates a new calendar model.
func New(st *state.AppState, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, EventDelegate{}, width, height-2)
	l.Title = "Calendar"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:   l,
		state:  st,
		keys:   k,
		cursor: st.Calendar.CurrentDate().Day(),
		width:  width,
		height: height,
	}
}

// Init returns a command that loads the initial listing.
func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Update handles messages for the calendar view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventsLoadedMsg:
		items := make([]list.Item, len(msg.Events))
		for i, e := range msg.Events {
			items[i] = EventItem{Event: e}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeys processes key input for both layouts.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	cal := m.state.Calendar

	switch {
	case key.Matches(msg, m.keys.CycleView):
		if cal.ViewMode() == state.CalendarViewMonth {
			cal.SetViewMode(state.CalendarViewChronology)
		} else {
			cal.SetViewMode(state.CalendarViewMonth)
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewEventMsg{} }

	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.SelectedID(); ok {
			return m, func() tea.Msg { return EditEventMsg{ID: id} }
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.SelectedID(); ok {
			cal.RemoveEvent(id)
			return m, m.Reload()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleStatusFilter):
		if id, ok := m.SelectedID(); ok {
			if e, found := cal.Events.Get(id); found {
				cal.SetEventStatus(id, nextEventStatus(e.Status))
				return m, m.Reload()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		cal.SetSortBy(nextEventSort(cal.SortBy()))
		return m, m.Reload()
	}

	if cal.ViewMode() == state.CalendarViewMonth {
		return m.handleGridKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleGridKeys moves the day cursor and navigates months and years.
func (m Model) handleGridKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	cal := m.state.Calendar
	days := daysInMonth(cal.CurrentDate())

	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 1 {
			m.cursor--
		} else {
			cal.NavigateMonth(-1)
			m.cursor = daysInMonth(cal.CurrentDate())
		}

	case key.Matches(msg, m.keys.Right):
		if m.cursor < days {
			m.cursor++
		} else {
			cal.NavigateMonth(1)
			m.cursor = 1
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 7 {
			m.cursor -= 7
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor+7 <= days {
			m.cursor += 7
		}

	case key.Matches(msg, m.keys.MoveLeft):
		cal.NavigateYear(-1)
		m.clampCursor()

	case key.Matches(msg, m.keys.MoveRight):
		cal.NavigateYear(1)
		m.clampCursor()

	case key.Matches(msg, m.keys.Select):
		anchor := cal.CurrentDate()
		cal.SelectDate(time.Date(
			anchor.Year(), anchor.Month(), m.cursor,
			0, 0, 0, 0, anchor.Location(),
		))

	case key.Matches(msg, m.keys.Back):
		cal.ClearSelectedDate()
	}

	return m, nil
}

// SelectedID returns the selected event's ID. In the month layout this is
// the first event on the selected day.
func (m Model) SelectedID() (string, bool) {
	if m.state.Calendar.ViewMode() == state.CalendarViewChronology {
		item, ok := m.list.SelectedItem().(EventItem)
		if !ok {
			return "", false
		}
		return item.Event.ID, true
	}

	anchor := m.state.Calendar.CurrentDate()
	day := time.Date(
		anchor.Year(), anchor.Month(), m.cursor,
		0, 0, 0, 0, anchor.Location(),
	)
	events := views.EventsOnDay(m.state.Calendar.Events.Items(), day)
	if len(events) == 0 {
		return "", false
	}
	return events[0].ID, true
}

// View renders the calendar in the active layout.
func (m Model) View() string {
	if m.state.Calendar.ViewMode() == state.CalendarViewChronology {
		return m.list.View()
	}
	return m.renderGrid()
}

// renderGrid draws the month grid with the day cursor and per-day events.
func (m Model) renderGrid() string {
	cal := m.state.Calendar
	grid := views.BuildMonthGrid(cal.CurrentDate(), cal.Events.Items())

	title := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue).Render(
		fmt.Sprintf("%s %d", grid.Month, grid.Year),
	)

	cellWidth := m.width/7 - 1
	if cellWidth < 8 {
		cellWidth = 8
	}

	weekdays := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	headerCells := make([]string, 7)
	for i, wd := range weekdays {
		headerCells[i] = lipgloss.NewStyle().
			Width(cellWidth).
			Foreground(theme.ColorGray).
			Render(wd)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	var weeks []string
	for start := 0; start < len(grid.Cells); start += 7 {
		end := start + 7
		if end > len(grid.Cells) {
			end = len(grid.Cells)
		}

		row := make([]string, 0, 7)
		for _, cell := range grid.Cells[start:end] {
			row = append(row, m.renderCell(cell, cellWidth))
		}
		weeks = append(weeks, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	sections := append([]string{title, header}, weeks...)
	if selected, ok := cal.SelectedDate(); ok {
		sections = append(sections, m.renderDayDetail(selected))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCell draws one day cell with an event count marker.
func (m Model) renderCell(cell views.MonthCell, width int) string {
	if cell.Day == 0 {
		return lipgloss.NewStyle().Width(width).Render("")
	}

	label := fmt.Sprintf("%2d", cell.Day)
	if n := len(cell.Events); n > 0 {
		label += fmt.Sprintf(" •%d", n)
	}

	style := lipgloss.NewStyle().Width(width)
	if cell.Day == m.cursor {
		style = style.Bold(true).Foreground(theme.ColorBlue)
	} else if len(cell.Events) > 0 {
		style = style.Foreground(theme.ColorGreen)
	} else {
		style = style.Foreground(theme.ColorWhite)
	}
	return style.Render(label)
}

// renderDayDetail lists the events on the selected day.
func (m Model) renderDayDetail(day time.Time) string {
	events := views.EventsOnDay(m.state.Calendar.Events.Items(), day)

	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(day.Format("Monday, Jan 2")),
	}
	if len(events) == 0 {
		lines = append(lines, theme.HelpStyle.Render("no events"))
	}
	for _, e := range events {
		detail := e.Title
		var meta []string
		if e.Time != "" {
			meta = append(meta, e.Time)
		}
		if e.Duration != "" {
			meta = append(meta, e.Duration)
		}
		if e.Participants > 0 {
			meta = append(meta, fmt.Sprintf("%d people", e.Participants))
		}
		if len(meta) > 0 {
			detail += theme.HelpStyle.Render("  " + strings.Join(meta, ", "))
		}
		lines = append(lines,
			theme.EventStatusStyle(e.Status).Render(string(e.Status))+" "+detail,
		)
	}

	return theme.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Reload returns a tea.Cmd that recomputes the chronology listing.
func (m Model) Reload() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		q := views.EventQuery{SortBy: st.Calendar.SortBy()}
		if query := st.UI.SearchQuery(); query != "" {
			q.Query = &query
		}
		return EventsLoadedMsg{
			Events: views.FilterEvents(st.Calendar.Events.Items(), q),
		}
	}
}

// SetSize updates the calendar dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}

// clampCursor keeps the day cursor inside the anchor month.
func (m *Model) clampCursor() {
	if days := daysInMonth(m.state.Calendar.CurrentDate()); m.cursor > days {
		m.cursor = days
	}
	if m.cursor < 1 {
		m.cursor = 1
	}
}

// daysInMonth returns the day count of the month containing t.
func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// nextEventSort cycles the chronology sort selection.
func nextEventSort(current state.EventSort) state.EventSort {
	for i, s := range eventSorts {
		if s == current {
			return eventSorts[(i+1)%len(eventSorts)]
		}
	}
	return eventSorts[0]
}

// nextEventStatus cycles upcoming, in-progress, completed.
func nextEventStatus(current model.EventStatus) model.EventStatus {
	for i, s := range eventStatusCycle {
		if s == current {
			return eventStatusCycle[(i+1)%len(eventStatusCycle)]
		}
	}
	return eventStatusCycle[0]
}
