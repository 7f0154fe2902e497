// Package taskform is the create/edit form for tasks.
package taskform

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

// TaskCreatedMsg is dispatched when a new task is submitted.
type TaskCreatedMsg struct {
	Task model.Task
}

// TaskUpdatedMsg is dispatched when an edited task is submitted. Task.ID
// names the target.
type TaskUpdatedMsg struct {
	Task model.Task
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	title          string
	description    string
	status         string
	priority       string
	projectID      string
	assigneeID     string
	dueDate        string
	estimatedHours string
	tags           string
}

// Model is the Bubble Tea model for the task create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string

	// reporterID is carried through edits; creates fill it from the form
	// opener.
	reporterID  string
	actualHours float64

	projects []model.Project
	users    []model.User
	width    int
	height   int
}

// New creates a new task form model.
func New(width, height int) Model {
	return Model{
		fb: &formBindings{
			status:   string(model.TaskStatusNew),
			priority: string(model.PriorityMedium),
		},
		width:  width,
		height: height,
	}
}

// SetOptions sets the selectable projects and assignees.
func (m *Model) SetOptions(projects []model.Project, users []model.User) {
	m.projects = projects
	m.users = users
}

// StartCreate initializes the form for creating a new task.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	m.reporterID = ""
	m.actualHours = 0
	*m.fb = formBindings{
		status:   string(model.TaskStatusNew),
		priority: string(model.PriorityMedium),
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing task.
func (m *Model) StartEdit(t model.Task) tea.Cmd {
	m.editMode = true
	m.editID = t.ID
	m.reporterID = t.ReporterID
	m.actualHours = t.ActualHours
	*m.fb = formBindings{
		title:       t.Title,
		description: t.Description,
		status:      string(t.Status),
		priority:    string(t.Priority),
		projectID:   t.ProjectID,
		assigneeID:  t.AssigneeID,
		tags:        strings.Join(t.Tags, ", "),
	}
	if !t.DueDate.IsZero() {
		m.fb.dueDate = t.DueDate.Format("2006-01-02")
	}
	if t.EstimatedHours > 0 {
		m.fb.estimatedHours = strconv.FormatFloat(t.EstimatedHours, 'f', -1, 64)
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the task form.
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

// View renders the task form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Task"
	if m.editMode {
		titleText = "Edit Task"
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
			Placeholder("What needs to be done?").
			Value(&m.fb.title).
			Validate(validateRequired("Title")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewSelect[string]().
			Title("Status").
			Options(statusOptions()...).
			Value(&m.fb.status),
		huh.NewSelect[string]().
			Title("Priority").
			Options(
				huh.NewOption("Urgent", string(model.PriorityUrgent)),
				huh.NewOption("High", string(model.PriorityHigh)),
				huh.NewOption("Medium", string(model.PriorityMedium)),
				huh.NewOption("Low", string(model.PriorityLow)),
			).
			Value(&m.fb.priority),
		m.projectField(),
		m.assigneeField(),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.dueDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Estimated Hours").
			Placeholder("e.g. 4.5 (optional)").
			Value(&m.fb.estimatedHours).
			Validate(validateOptionalHours),
		huh.NewInput().
			Title("Tags").
			Placeholder("comma, separated (optional)").
			Value(&m.fb.tags),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) projectField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("None", ""),
	}
	for _, p := range m.projects {
		if p.Status != model.ProjectStatusArchived {
			opts = append(opts, huh.NewOption(p.Name, p.ID))
		}
	}
	return huh.NewSelect[string]().
		Title("Project").
		Options(opts...).
		Value(&m.fb.projectID)
}

func (m *Model) assigneeField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("Unassigned", ""),
	}
	for _, u := range m.users {
		opts = append(opts, huh.NewOption(u.Name, u.ID))
	}
	return huh.NewSelect[string]().
		Title("Assignee").
		Options(opts...).
		Value(&m.fb.assigneeID)
}

func (m Model) handleSubmit() tea.Cmd {
	estimated, _ := strconv.ParseFloat(strings.TrimSpace(m.fb.estimatedHours), 64)

	t := model.Task{
		Title:          m.fb.title,
		Description:    m.fb.description,
		Status:         model.TaskStatus(m.fb.status),
		Priority:       model.Priority(m.fb.priority),
		ProjectID:      m.fb.projectID,
		AssigneeID:     m.fb.assigneeID,
		ReporterID:     m.reporterID,
		EstimatedHours: estimated,
		ActualHours:    m.actualHours,
		Tags:           splitTags(m.fb.tags),
	}

	if d := strings.TrimSpace(m.fb.dueDate); d != "" {
		if parsed, err := time.Parse("2006-01-02", d); err == nil {
			t.DueDate = parsed
		}
	}

	if m.editMode {
		t.ID = m.editID
		return func() tea.Msg { return TaskUpdatedMsg{Task: t} }
	}
	return func() tea.Msg { return TaskCreatedMsg{Task: t} }
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

func statusOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(model.TaskStatuses))
	for i, st := range model.TaskStatuses {
		opts[i] = huh.NewOption(string(st), string(st))
	}
	return opts
}

// splitTags parses a comma-separated tag list, dropping empties.
func splitTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateOptionalDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

func validateOptionalHours(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || n < 0 {
		return fmt.Errorf("hours must be a non-negative number")
	}
	return nil
}
