// Package projectform is the create/edit form for projects.
package projectform

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

// ProjectCreatedMsg is dispatched when a new project is submitted.
type ProjectCreatedMsg struct {
	Project model.Project
}

// ProjectUpdatedMsg is dispatched when an edited project is submitted.
// Project.ID names the target.
type ProjectUpdatedMsg struct {
	Project model.Project
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	name        string
	description string
	status      string
	priority    string
	startDate   string
	dueDate     string
	progress    string
	teamID      string
	ownerID     string
	folderID    string
}

// Model is the Bubble Tea model for the project create/edit form.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	editMode bool
	editID   string
	teams    []model.Team
	users    []model.User
	folders  []model.ProjectFolder
	width    int
	height   int
}

// New creates a new project form model.
func New(width, height int) Model {
	return Model{
		fb: &formBindings{
			status:   string(model.ProjectStatusActive),
			priority: string(model.PriorityMedium),
		},
		width:  width,
		height: height,
	}
}

// SetOptions sets the selectable teams, owners, and folders.
func (m *Model) SetOptions(teams []model.Team, users []model.User, folders []model.ProjectFolder) {
	m.teams = teams
	m.users = users
	m.folders = folders
}

// StartCreate initializes the form for creating a new project.
func (m *Model) StartCreate() tea.Cmd {
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{
		status:   string(model.ProjectStatusActive),
		priority: string(model.PriorityMedium),
		progress: "0",
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// StartEdit initializes the form for editing an existing project.
func (m *Model) StartEdit(p model.Project) tea.Cmd {
	m.editMode = true
	m.editID = p.ID
	*m.fb = formBindings{
		name:        p.Name,
		description: p.Description,
		status:      string(p.Status),
		priority:    string(p.Priority),
		startDate:   formatDate(p.StartDate),
		dueDate:     formatDate(p.DueDate),
		progress:    strconv.Itoa(p.Progress),
		teamID:      p.TeamID,
		ownerID:     p.OwnerID,
		folderID:    p.FolderID,
	}
	m.form = m.buildForm()
	return m.form.Init()
}

// Update handles messages for the project form.
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

// View renders the project form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := "New Project"
	if m.editMode {
		titleText = "Edit Project"
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
			Title("Name").
			Placeholder("Project name").
			Value(&m.fb.name).
			Validate(validateRequired("Name")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewSelect[string]().
			Title("Status").
			Options(
				huh.NewOption("Active", string(model.ProjectStatusActive)),
				huh.NewOption("On Hold", string(model.ProjectStatusOnHold)),
				huh.NewOption("Completed", string(model.ProjectStatusCompleted)),
				huh.NewOption("Archived", string(model.ProjectStatusArchived)),
			).
			Value(&m.fb.status),
		huh.NewSelect[string]().
			Title("Priority").
			Options(priorityOptions()...).
			Value(&m.fb.priority),
		huh.NewInput().
			Title("Start Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.startDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Due Date").
			Placeholder("YYYY-MM-DD (optional)").
			Value(&m.fb.dueDate).
			Validate(validateOptionalDate),
		huh.NewInput().
			Title("Progress").
			Placeholder("0-100").
			Value(&m.fb.progress).
			Validate(validateProgress),
		m.teamField(),
		m.ownerField(),
	}
	if folderField := m.folderField(); folderField != nil {
		fields = append(fields, folderField)
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) teamField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("None", ""),
	}
	for _, t := range m.teams {
		opts = append(opts, huh.NewOption(t.Name, t.ID))
	}
	return huh.NewSelect[string]().
		Title("Team").
		Options(opts...).
		Value(&m.fb.teamID)
}

func (m *Model) ownerField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("Unassigned", ""),
	}
	for _, u := range m.users {
		opts = append(opts, huh.NewOption(u.Name, u.ID))
	}
	return huh.NewSelect[string]().
		Title("Owner").
		Options(opts...).
		Value(&m.fb.ownerID)
}

func (m *Model) folderField() huh.Field {
	if len(m.folders) == 0 {
		return nil
	}
	opts := []huh.Option[string]{
		huh.NewOption("No folder", ""),
	}
	for _, f := range m.folders {
		opts = append(opts, huh.NewOption(f.Name, f.ID))
	}
	return huh.NewSelect[string]().
		Title("Folder").
		Options(opts...).
		Value(&m.fb.folderID)
}

func (m Model) handleSubmit() tea.Cmd {
	progress, _ := strconv.Atoi(strings.TrimSpace(m.fb.progress))

	p := model.Project{
		Name:        m.fb.name,
		Description: m.fb.description,
		Status:      model.ProjectStatus(m.fb.status),
		Priority:    model.Priority(m.fb.priority),
		StartDate:   parseDate(m.fb.startDate),
		DueDate:     parseDate(m.fb.dueDate),
		Progress:    progress,
		TeamID:      m.fb.teamID,
		OwnerID:     m.fb.ownerID,
		FolderID:    m.fb.folderID,
	}

	if m.editMode {
		p.ID = m.editID
		return func() tea.Msg { return ProjectUpdatedMsg{Project: p} }
	}
	return func() tea.Msg { return ProjectCreatedMsg{Project: p} }
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

func priorityOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Urgent", string(model.PriorityUrgent)),
		huh.NewOption("High", string(model.PriorityHigh)),
		huh.NewOption("Medium", string(model.PriorityMedium)),
		huh.NewOption("Low", string(model.PriorityLow)),
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
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

func validateProgress(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 100 {
		return fmt.Errorf("progress must be a number from 0 to 100")
	}
	return nil
}
