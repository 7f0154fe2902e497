// Package teamform holds the roster forms: create/edit team, create/edit
// member, and send invitation.
package teamform

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/theme"
)

// TeamCreatedMsg is dispatched when a new team is submitted.
type TeamCreatedMsg struct {
	Team model.Team
}

// TeamUpdatedMsg is dispatched when an edited team is submitted. Team.ID
// names the target.
type TeamUpdatedMsg struct {
	Team model.Team
}

// UserCreatedMsg is dispatched when a new member is submitted.
type UserCreatedMsg struct {
	User model.User
}

// UserUpdatedMsg is dispatched when an edited member is submitted.
// User.ID names the target.
type UserUpdatedMsg struct {
	User model.User
}

// InviteSubmittedMsg is dispatched when an invitation is submitted.
type InviteSubmittedMsg struct {
	Invitation model.Invitation
}

// CancelMsg is dispatched when the user cancels the form.
type CancelMsg struct{}

// formKind selects which roster form is active.
type formKind int

const (
	kindTeam formKind = iota
	kindUser
	kindInvite
)

// formBindings holds form field values on the heap so that huh's Value()
// pointers remain valid across Bubble Tea model copies.
type formBindings struct {
	// Team fields.
	name        string
	description string
	color       string
	leaderID    string

	// User and invitation fields.
	email      string
	role       string
	teamID     string
	department string
	isActive   bool
	message    string
}

// Model is the Bubble Tea model for the roster forms.
type Model struct {
	form     *huh.Form
	fb       *formBindings
	kind     formKind
	editMode bool
	editID   string
	teams    []model.Team
	users    []model.User
	width    int
	height   int
}

// New creates a new roster form model.
func New(width, height int) Model {
	return Model{
		fb:     &formBindings{},
		width:  width,
		height: height,
	}
}

// SetOptions sets the selectable teams and leaders.
func (m *Model) SetOptions(teams []model.Team, users []model.User) {
	m.teams = teams
	m.users = users
}

// StartCreateTeam initializes the form for creating a team.
func (m *Model) StartCreateTeam() tea.Cmd {
	m.kind = kindTeam
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{color: "#3B82F6"}
	m.form = m.buildTeamForm()
	return m.form.Init()
}

// StartEditTeam initializes the form for editing a team.
func (m *Model) StartEditTeam(t model.Team) tea.Cmd {
	m.kind = kindTeam
	m.editMode = true
	m.editID = t.ID
	*m.fb = formBindings{
		name:        t.Name,
		description: t.Description,
		color:       t.Color,
		leaderID:    t.LeaderID,
	}
	m.form = m.buildTeamForm()
	return m.form.Init()
}

// StartCreateUser initializes the form for creating a member.
func (m *Model) StartCreateUser() tea.Cmd {
	m.kind = kindUser
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{
		role:     string(model.RoleMember),
		isActive: true,
	}
	m.form = m.buildUserForm()
	return m.form.Init()
}

// StartEditUser initializes the form for editing a member.
func (m *Model) StartEditUser(u model.User) tea.Cmd {
	m.kind = kindUser
	m.editMode = true
	m.editID = u.ID
	*m.fb = formBindings{
		name:       u.Name,
		email:      u.Email,
		role:       string(u.Role),
		teamID:     u.TeamID,
		department: u.Department,
		isActive:   u.IsActive,
	}
	m.form = m.buildUserForm()
	return m.form.Init()
}

// StartInvite initializes the invitation form.
func (m *Model) StartInvite() tea.Cmd {
	m.kind = kindInvite
	m.editMode = false
	m.editID = ""
	*m.fb = formBindings{role: string(model.RoleMember)}
	m.form = m.buildInviteForm()
	return m.form.Init()
}

// Update handles messages for the roster form.
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

// View renders the active roster form.
func (m Model) View() string {
	if m.form == nil {
		return ""
	}

	titleText := ""
	switch m.kind {
	case kindTeam:
		titleText = "New Team"
		if m.editMode {
			titleText = "Edit Team"
		}
	case kindUser:
		titleText = "New Member"
		if m.editMode {
			titleText = "Edit Member"
		}
	case kindInvite:
		titleText = "Send Invitation"
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

func (m *Model) buildTeamForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Team name").
			Value(&m.fb.name).
			Validate(validateRequired("Name")),
		huh.NewText().
			Title("Description").
			Placeholder("Optional details...").
			Value(&m.fb.description),
		huh.NewInput().
			Title("Color").
			Placeholder("#RRGGBB").
			Value(&m.fb.color),
		m.leaderField(),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) buildUserForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Placeholder("Full name").
			Value(&m.fb.name).
			Validate(validateRequired("Name")),
		huh.NewInput().
			Title("Email").
			Placeholder("name@example.com").
			Value(&m.fb.email).
			Validate(validateEmail),
		huh.NewSelect[string]().
			Title("Role").
			Options(roleOptions()...).
			Value(&m.fb.role),
		m.teamField(),
		huh.NewInput().
			Title("Department").
			Placeholder("Optional").
			Value(&m.fb.department),
		huh.NewConfirm().
			Title("Active").
			Value(&m.fb.isActive),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) buildInviteForm() *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Title("Email").
			Placeholder("name@example.com").
			Value(&m.fb.email).
			Validate(validateEmail),
		huh.NewSelect[string]().
			Title("Role").
			Options(roleOptions()...).
			Value(&m.fb.role),
		m.teamField(),
		huh.NewText().
			Title("Message").
			Placeholder("Optional welcome note...").
			Value(&m.fb.message),
	}

	return huh.NewForm(
		huh.NewGroup(fields...),
	).WithWidth(m.formWidth()).WithHeight(m.formHeight())
}

func (m *Model) teamField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("None (waiting list)", ""),
	}
	for _, t := range m.teams {
		opts = append(opts, huh.NewOption(t.Name, t.ID))
	}
	return huh.NewSelect[string]().
		Title("Team").
		Options(opts...).
		Value(&m.fb.teamID)
}

func (m *Model) leaderField() huh.Field {
	opts := []huh.Option[string]{
		huh.NewOption("No leader", ""),
	}
	for _, u := range m.users {
		opts = append(opts, huh.NewOption(u.Name, u.ID))
	}
	return huh.NewSelect[string]().
		Title("Leader").
		Options(opts...).
		Value(&m.fb.leaderID)
}

func (m Model) handleSubmit() tea.Cmd {
	switch m.kind {
	case kindTeam:
		t := model.Team{
			Name:        m.fb.name,
			Description: m.fb.description,
			Color:       m.fb.color,
			LeaderID:    m.fb.leaderID,
		}
		if m.editMode {
			t.ID = m.editID
			return func() tea.Msg { return TeamUpdatedMsg{Team: t} }
		}
		return func() tea.Msg { return TeamCreatedMsg{Team: t} }

	case kindUser:
		u := model.User{
			Name:       m.fb.name,
			Email:      m.fb.email,
			Role:       model.Role(m.fb.role),
			TeamID:     m.fb.teamID,
			Department: m.fb.department,
			IsActive:   m.fb.isActive,
		}
		if m.editMode {
			u.ID = m.editID
			return func() tea.Msg { return UserUpdatedMsg{User: u} }
		}
		return func() tea.Msg { return UserCreatedMsg{User: u} }

	default:
		inv := model.Invitation{
			Email:   m.fb.email,
			Status:  model.InvitationPending,
			Role:    model.Role(m.fb.role),
			TeamID:  m.fb.teamID,
			Message: m.fb.message,
		}
		return func() tea.Msg { return InviteSubmittedMsg{Invitation: inv} }
	}
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

func roleOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("Admin", string(model.RoleAdmin)),
		huh.NewOption("Manager", string(model.RoleManager)),
		huh.NewOption("Member", string(model.RoleMember)),
		huh.NewOption("Viewer", string(model.RoleViewer)),
	}
}

func validateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("Email is required")
	}
	at := strings.Index(s, "@")
	if at <= 0 || at == len(s)-1 || !strings.Contains(s[at:], ".") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
