// Package eventform is the create/edit form for calendar events.
package eventform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/theme"
)

// EventCreatedMsg is dispatched when a new event is submitted.
type EventCreatedMsg struct {
	Event model.Event
}

// EventUpdatedMsg is dispatched when an edited event is submitted.
// Event.ID names the target.
type EventUpdatedMsg struct {
	Event model.Event
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title        string
	eventType    string
	date         string
	timeOfDay    string
	duration     string
	status       string
	color        string
	participants string
	description  string
}

// Model is the Bubble Tea model for the event create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	width    int
	height   int
}

// New creates a new event form model.
func New(width, height int) Model {
	return Model{
		fb: &formBindings{
			eventType: string(model.EventTypeDesign),
			status:    string(model.EventStatusUpcoming),
		},
		width:  width,
		height: height,
	}
}

// StartCreate initializes the form for creating a new event, prefilled
// with the given date.
func (m *Model) StartCreate(date time.Time) tea.Cmd {
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{
		eventType: string(model.EventTypeDesign),
		status:    string(model.EventStatusUpcoming),
		color:     "#3B82F6",
	}
	if !date.IsZero() {
		m.fb.date = date.Format("2006-01-02")
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing event.
func (m *Model) StartEdit(e model.Event) tea.Cmd {
	m.editMode = true
	m.editID = e.ID
	*m.fb = formBindings{
		title:       e.Title,
		eventType:   string(e.Type),
		timeOfDay:   e.Time,
		duration:    e.Duration,
		status:      string(e.Status),
		color:       e.Color,
		description: e.Description,
	}
	if !e.Date.IsZero() {
		m.fb.date = e.Date.Format("2006-01-02")
	}
	if e.Participants > 0 {
		m.fb.participants = strconv.Itoa(e.Participants)
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the event form.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}

	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		return m, m.handleSubmit()
	}
	if m.form.State == huh.StateAborted {
		return m, func() tea.Msg { return CancelMsg{} }
	}

	return m, cmd
}

// View renders the event form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Event"
	if m.editMode {
		titleText = "Edit Event"
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	content := titleStyle.Render(titleText) + "\n" + m.form.View()

	return lipgloss.NewStyle().
		Padding(1, 2).
		Render(content)
}

// SetSize updates the form dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) buildForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Title").
			Placeholder("Event title").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewSelect[string]().
			Title("Type").
			Options(
				huh.NewOption("Instagram Post", string(model.EventTypeInstagramPost)),
				huh.NewOption("Website", string(model.EventTypeWebsite)),
				huh.NewOption("Pricing Page", string(model.EventTypePricingPage)),
				huh.NewOption("Presentation", string(model.EventTypePresentation)),
				huh.NewOption("Platform", string(model.EventTypePlatform)),
				huh.NewOption("Design", string(model.EventTypeDesign)),
			).
			Value(&m.fb.eventType),
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&m.fb.date).
			Validate(validateDate),
		huh.NewInput().
			Title("Time").
			Placeholder("HH:MM (optional)").
			Value(&m.fb.timeOfDay).
			Validate(validateOptionalClock),
		huh.NewInput().
			Title("Duration").
			Placeholder("e.g. 2 hours (optional)").
			Value(&m.fb.duration),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Upcoming", string(model.EventStatusUpcoming)),
				huh.NewOption("In Progress", string(model.EventStatusInProgress)),
				huh.NewOption("Completed", string(model.EventStatusCompleted)),
			).
			Value(&m.fb.status),
		huh.NewInput().
			Title("Color").
			Placeholder("#RRGGBB").
			Value(&m.fb.color),
		huh.NewInput().
			Title("Participants").
			Placeholder("number (optional)").
			Value(&m.fb.participants).
			Validate(validateOptionalCount),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m Model) handleSubmit() tea.Cmd {
	participants, _ := strconv.Atoi(strings.TrimSpace(m.fb.participants))
	date, _ := time.Parse("2006-01-02", strings.TrimSpace(m.fb.date))

	e := model.Event{
		Title:        m.fb.title,
		Type:         model.EventType(m.fb.eventType),
		Date:         date,
		Time:         strings.TrimSpace(m.fb.timeOfDay),
		Duration:     strings.TrimSpace(m.fb.duration),
		Status:       model.EventStatus(m.fb.status),
		Color:        m.fb.color,
		Participants: participants,
		Description:  m.fb.description,
	}

	if m.editMode {
		e.ID = m.editID
		return func() tea.Msg { return EventUpdatedMsg{Event: e} }
	}
	return func() tea.Msg { return EventCreatedMsg{Event: e} }
}

func (m Model) formWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

func (m Model) formHeight() int {
	h := m.height - 4
	if h < 10 {
		h = 10
	}
	return h
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalClock(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return fmt.Errorf("invalid time format, use HH:MM")
	}
	return nil
}

func validateOptionalCount(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a non-negative number")
	}
	return nil
}
