// Package app wires the screens, forms, sync loop, and API façade into
// the root Bubble Tea model.
package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/projectflow/internal/api"
	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	appsync "github.com/nhle/projectflow/internal/sync"
	"github.com/nhle/projectflow/internal/ui"
	"github.com/nhle/projectflow/internal/ui/calendarview"
	"github.com/nhle/projectflow/internal/ui/dashboard"
	"github.com/nhle/projectflow/internal/ui/eventform"
	"github.com/nhle/projectflow/internal/ui/helpview"
	"github.com/nhle/projectflow/internal/ui/projectform"
	"github.com/nhle/projectflow/internal/ui/projectlist"
	"github.com/nhle/projectflow/internal/ui/taskboard"
	"github.com/nhle/projectflow/internal/ui/taskform"
	"github.com/nhle/projectflow/internal/ui/teamform"
	"github.com/nhle/projectflow/internal/ui/teams"
)

// Screen identifies the active top-level screen.
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenProjects
	ScreenTasks
	ScreenCalendar
	ScreenTeams
)

// Model is the root Bubble Tea model. The open modal lives in the UI
// store; the root model routes messages to the matching form while one is
// open and to the active screen otherwise.
type Model struct {
	state     *state.AppState
	facade    *api.Facade
	refresher *appsync.Refresher
	keys      *keys.KeyMap
	layout    ui.Layout

	currentScreen Screen
	helpOpen      bool

	dashboard dashboard.Model
	projects  projectlist.Model
	tasks     taskboard.Model
	calendar  calendarview.Model
	roster    teams.Model
	helpView  helpview.Model

	projectForm projectform.Model
	taskForm    taskform.Model
	teamForm    teamform.Model
	eventForm   eventform.Model

	ready     bool
	statusMsg string
}

// New creates the root application model.
func New(st *state.AppState, facade *api.Facade, refresher *appsync.Refresher) Model {
	k := keys.DefaultKeyMap()

	return Model{
		state:     st,
		facade:    facade,
		refresher: refresher,
		keys:      k,

		currentScreen: ScreenDashboard,

		dashboard: dashboard.New(st, k, 80, 24),
		projects:  projectlist.New(st, k, 80, 24),
		tasks:     taskboard.New(st, k, 80, 24),
		calendar:  calendarview.New(st, k, 80, 24),
		roster:    teams.New(st, k, 80, 24),
		helpView:  helpview.New(k, 80, 24),

		projectForm: projectform.New(80, 24),
		taskForm:    taskform.New(80, 24),
		teamForm:    teamform.New(80, 24),
		eventForm:   eventform.New(80, 24),
	}
}

// Init loads the initial listings and starts the refresh loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.projects.Init(),
		m.tasks.Init(),
		m.calendar.Init(),
		m.refresher.Start(),
	)
}

// Update handles messages and dispatches to the active screen or form.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w := m.layout.ContentWidth()
		h := m.layout.ContentHeight()
		m.dashboard.SetSize(w, h)
		m.projects.SetSize(w, h)
		m.tasks.SetSize(w, h)
		m.calendar.SetSize(w, h)
		m.roster.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.projectForm.SetSize(w, h)
		m.taskForm.SetSize(w, h)
		m.teamForm.SetSize(w, h)
		m.eventForm.SetSize(w, h)
		// Forward to the active view so huh forms can calculate their layout.
		return m.updateActiveView(msg)

	case appsync.RefreshResultMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("sync error (%s): %v", msg.Collection, msg.Err)
		} else {
			m.statusMsg = ""
		}
		return m, tea.Batch(
			m.projects.Reload(),
			m.tasks.Reload(),
			m.refresher.WaitForNextResult(),
		)

	case tea.KeyMsg:
		if handled, mdl, cmd := m.handleGlobalKeys(msg); handled {
			return mdl, cmd
		}
		return m.updateActiveView(msg)

	// Listing reloads are routed by type, not by active screen, so a
	// reload issued from a sync result lands even while another screen
	// is showing.
	case projectlist.ProjectsLoadedMsg:
		var cmd tea.Cmd
		m.projects, cmd = m.projects.Update(msg)
		return m, cmd

	case taskboard.TasksLoadedMsg:
		var cmd tea.Cmd
		m.tasks, cmd = m.tasks.Update(msg)
		return m, cmd

	case calendarview.EventsLoadedMsg:
		var cmd tea.Cmd
		m.calendar, cmd = m.calendar.Update(msg)
		return m, cmd
	}

	if mdl, cmd, handled := m.handleScreenRequests(msg); handled {
		return mdl, cmd
	}
	if mdl, cmd, handled := m.handleFormResults(msg); handled {
		return mdl, cmd
	}
	if mdl, cmd, handled := m.handleRemoteResults(msg); handled {
		return mdl, cmd
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that work on every screen. It reports
// whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.refresher.Stop()
		return true, m, tea.Quit
	}

	// While a modal is open the form owns the keyboard; esc aborts the
	// form and surfaces as a CancelMsg.
	if m.state.UI.ActiveModal() != nil {
		return false, m, nil
	}
	if m.searching() {
		return false, m, nil
	}

	if m.helpOpen {
		switch {
		case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Back):
			m.helpOpen = false
			return true, m, nil
		}
		return true, m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.refresher.Stop()
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.helpOpen = true
		return true, m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.refresher.RefreshAll()
		return true, m, nil

	case key.Matches(msg, m.keys.Dashboard):
		m.currentScreen = ScreenDashboard
		return true, m, nil

	case key.Matches(msg, m.keys.Projects):
		m.currentScreen = ScreenProjects
		return true, m, m.projects.Reload()

	case key.Matches(msg, m.keys.Tasks):
		m.currentScreen = ScreenTasks
		return true, m, m.tasks.Reload()

	case key.Matches(msg, m.keys.Calendar):
		m.currentScreen = ScreenCalendar
		return true, m, m.calendar.Reload()

	case key.Matches(msg, m.keys.Teams):
		m.currentScreen = ScreenTeams
		return true, m, nil
	}

	return false, m, nil
}

// handleScreenRequests reacts to screen messages that open modals or ask
// for server writes.
func (m Model) handleScreenRequests(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	st := m.state

	switch msg := msg.(type) {
	case projectlist.NewProjectMsg:
		st.UI.SetActiveModal(state.CreateProjectModal{})
		m.projectForm.SetOptions(
			st.Teams.Teams.Items(), st.Teams.Users.Items(), st.Projects.Folders.Items(),
		)
		return m, m.projectForm.StartCreate(), true

	case projectlist.EditProjectMsg:
		p, ok := st.Projects.Get(msg.ID)
		if !ok {
			m.statusMsg = "project no longer exists"
			return m, nil, true
		}
		st.UI.SetActiveModal(state.EditProjectModal{ID: msg.ID})
		m.projectForm.SetOptions(
			st.Teams.Teams.Items(), st.Teams.Users.Items(), st.Projects.Folders.Items(),
		)
		return m, m.projectForm.StartEdit(p), true

	case projectlist.DeleteProjectMsg:
		return m, m.deleteProject(msg.ID), true

	case taskboard.NewTaskMsg:
		st.UI.SetActiveModal(state.CreateTaskModal{})
		m.taskForm.SetOptions(st.Projects.Items(), st.Teams.Users.Items())
		return m, m.taskForm.StartCreate(), true

	case taskboard.EditTaskMsg:
		t, ok := st.Tasks.Get(msg.ID)
		if !ok {
			m.statusMsg = "task no longer exists"
			return m, nil, true
		}
		st.UI.SetActiveModal(state.EditTaskModal{ID: msg.ID})
		m.taskForm.SetOptions(st.Projects.Items(), st.Teams.Users.Items())
		return m, m.taskForm.StartEdit(t), true

	case taskboard.DeleteTaskMsg:
		return m, m.deleteTask(msg.ID), true

	case taskboard.MoveTaskMsg:
		return m, m.moveTask(msg.ID, msg.Status), true

	case calendarview.NewEventMsg:
		st.UI.SetActiveModal(state.CreateEventModal{})
		date, ok := st.Calendar.SelectedDate()
		if !ok {
			date = st.Calendar.CurrentDate()
		}
		return m, m.eventForm.StartCreate(date), true

	case calendarview.EditEventMsg:
		e, ok := st.Calendar.Events.Get(msg.ID)
		if !ok {
			m.statusMsg = "event no longer exists"
			return m, nil, true
		}
		st.UI.SetActiveModal(state.EditEventModal{ID: msg.ID})
		return m, m.eventForm.StartEdit(e), true

	case teams.NewTeamMsg:
		st.UI.SetActiveModal(state.CreateTeamModal{})
		m.teamForm.SetOptions(st.Teams.Teams.Items(), st.Teams.Users.Items())
		return m, m.teamForm.StartCreateTeam(), true

	case teams.EditTeamMsg:
		t, ok := st.Teams.Teams.Get(msg.ID)
		if !ok {
			m.statusMsg = "team no longer exists"
			return m, nil, true
		}
		st.UI.SetActiveModal(state.EditTeamModal{ID: msg.ID})
		m.teamForm.SetOptions(st.Teams.Teams.Items(), st.Teams.Users.Items())
		return m, m.teamForm.StartEditTeam(t), true

	case teams.DeleteTeamMsg:
		return m, m.deleteTeam(msg.ID), true

	case teams.NewUserMsg:
		st.UI.SetActiveModal(state.CreateUserModal{})
		m.teamForm.SetOptions(st.Teams.Teams.Items(), st.Teams.Users.Items())
		return m, m.teamForm.StartCreateUser(), true

	case teams.EditUserMsg:
		u, ok := st.Teams.Users.Get(msg.ID)
		if !ok {
			m.statusMsg = "member no longer exists"
			return m, nil, true
		}
		st.UI.SetActiveModal(state.EditUserModal{ID: msg.ID})
		m.teamForm.SetOptions(st.Teams.Teams.Items(), st.Teams.Users.Items())
		return m, m.teamForm.StartEditUser(u), true

	case teams.DeleteUserMsg:
		return m, m.deleteUser(msg.ID), true

	case teams.InviteMsg:
		st.UI.SetActiveModal(state.InviteModal{})
		m.teamForm.SetOptions(st.Teams.Teams.Items(), st.Teams.Users.Items())
		return m, m.teamForm.StartInvite(), true
	}

	return m, nil, false
}

// handleFormResults applies form submissions. Server-backed entities go
// through the façade; session-local ones are applied directly.
func (m Model) handleFormResults(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	st := m.state

	switch msg := msg.(type) {
	case projectform.ProjectCreatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.createProject(msg.Project), true

	case projectform.ProjectUpdatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.updateProject(msg.Project.ID, projectPatchOf(msg.Project)), true

	case projectform.CancelMsg:
		st.UI.SetActiveModal(nil)
		return m, nil, true

	case taskform.TaskCreatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.createTask(msg.Task), true

	case taskform.TaskUpdatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.updateTask(msg.Task.ID, taskPatchOf(msg.Task)), true

	case taskform.CancelMsg:
		st.UI.SetActiveModal(nil)
		return m, nil, true

	case teamform.TeamCreatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.createTeam(msg.Team), true

	case teamform.TeamUpdatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.updateTeam(msg.Team.ID, teamPatchOf(msg.Team)), true

	case teamform.UserCreatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.createUser(msg.User), true

	case teamform.UserUpdatedMsg:
		st.UI.SetActiveModal(nil)
		return m, m.updateUser(msg.User.ID, userPatchOf(msg.User)), true

	case teamform.InviteSubmittedMsg:
		// Invitations are session-local; no server round trip.
		st.UI.SetActiveModal(nil)
		st.Teams.SendInvitation(msg.Invitation)
		return m, nil, true

	case teamform.CancelMsg:
		st.UI.SetActiveModal(nil)
		return m, nil, true

	case eventform.EventCreatedMsg:
		// Events are session-local; no server round trip.
		st.UI.SetActiveModal(nil)
		st.Calendar.AddEvent(msg.Event)
		return m, m.calendar.Reload(), true

	case eventform.EventUpdatedMsg:
		st.UI.SetActiveModal(nil)
		if !st.Calendar.UpdateEvent(msg.Event.ID, eventPatchOf(msg.Event)) {
			m.statusMsg = "event no longer exists"
		}
		return m, m.calendar.Reload(), true

	case eventform.CancelMsg:
		st.UI.SetActiveModal(nil)
		return m, nil, true
	}

	return m, nil, false
}

// handleRemoteResults reconciles confirmed server writes into the stores.
// Failed writes leave local state untouched and surface in the status bar.
func (m Model) handleRemoteResults(msg tea.Msg) (tea.Model, tea.Cmd, bool) {
	st := m.state

	switch msg := msg.(type) {
	case projectCreatedResultMsg:
		if msg.err != nil {
			st.Projects.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Projects.Append(msg.project)
		return m, m.projects.Reload(), true

	case projectUpdatedResultMsg:
		if msg.err != nil {
			st.Projects.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Projects.Update(msg.id, msg.patch)
		return m, m.projects.Reload(), true

	case projectDeletedResultMsg:
		if msg.err != nil {
			st.Projects.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Projects.Remove(msg.id)
		return m, m.projects.Reload(), true

	case taskCreatedResultMsg:
		if msg.err != nil {
			st.Tasks.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Tasks.Append(msg.task)
		return m, m.tasks.Reload(), true

	case taskUpdatedResultMsg:
		if msg.err != nil {
			st.Tasks.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Tasks.Update(msg.id, msg.patch)
		return m, m.tasks.Reload(), true

	case taskDeletedResultMsg:
		if msg.err != nil {
			st.Tasks.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Tasks.Remove(msg.id)
		return m, m.tasks.Reload(), true

	case teamCreatedResultMsg:
		if msg.err != nil {
			st.Teams.Teams.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.Teams.Append(msg.team)
		return m, nil, true

	case teamUpdatedResultMsg:
		if msg.err != nil {
			st.Teams.Teams.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.UpdateTeam(msg.id, msg.patch)
		return m, nil, true

	case teamDeletedResultMsg:
		if msg.err != nil {
			st.Teams.Teams.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.RemoveTeam(msg.id)
		return m, nil, true

	case userCreatedResultMsg:
		if msg.err != nil {
			st.Teams.Users.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.Users.Append(msg.user)
		return m, nil, true

	case userUpdatedResultMsg:
		if msg.err != nil {
			st.Teams.Users.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.UpdateUser(msg.id, msg.patch)
		return m, nil, true

	case userDeletedResultMsg:
		if msg.err != nil {
			st.Teams.Users.SetError(msg.err.Error())
			m.statusMsg = msg.err.Error()
			return m, nil, true
		}
		st.Teams.RemoveUser(msg.id)
		return m, nil, true
	}

	return m, nil, false
}

// updateActiveView dispatches the message to the open form or the active
// screen.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if modal := m.state.UI.ActiveModal(); modal != nil {
		switch modal.(type) {
		case state.CreateProjectModal, state.EditProjectModal:
			m.projectForm, cmd = m.projectForm.Update(msg)
		case state.CreateTaskModal, state.EditTaskModal:
			m.taskForm, cmd = m.taskForm.Update(msg)
		case state.CreateTeamModal, state.EditTeamModal,
			state.CreateUserModal, state.EditUserModal, state.InviteModal:
			m.teamForm, cmd = m.teamForm.Update(msg)
		case state.CreateEventModal, state.EditEventModal:
			m.eventForm, cmd = m.eventForm.Update(msg)
		}
		return m, cmd
	}

	if m.helpOpen {
		m.helpView, cmd = m.helpView.Update(msg)
		return m, cmd
	}

	switch m.currentScreen {
	case ScreenDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ScreenProjects:
		m.projects, cmd = m.projects.Update(msg)
	case ScreenTasks:
		m.tasks, cmd = m.tasks.Update(msg)
	case ScreenCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	case ScreenTeams:
		m.roster, cmd = m.roster.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("ProjectFlow", m.syncStatus())
	content := m.renderContent()

	statusBar := m.layout.RenderStatusBar(m.keyHints())
	if m.statusMsg != "" {
		statusBar = m.layout.RenderErrorBar(m.statusMsg)
	}

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// renderContent returns the rendered string for the active form or screen.
func (m Model) renderContent() string {
	if modal := m.state.UI.ActiveModal(); modal != nil {
		switch modal.(type) {
		case state.CreateProjectModal, state.EditProjectModal:
			return m.projectForm.View()
		case state.CreateTaskModal, state.EditTaskModal:
			return m.taskForm.View()
		case state.CreateEventModal, state.EditEventModal:
			return m.eventForm.View()
		default:
			return m.teamForm.View()
		}
	}

	if m.helpOpen {
		return m.helpView.View()
	}

	switch m.currentScreen {
	case ScreenDashboard:
		return m.dashboard.View()
	case ScreenProjects:
		return m.projects.View()
	case ScreenTasks:
		return m.tasks.View()
	case ScreenCalendar:
		return m.calendar.View()
	case ScreenTeams:
		return m.roster.View()
	default:
		return ""
	}
}

// syncStatus returns a short string describing the fetch state of the
// server-backed collections.
func (m Model) syncStatus() string {
	loading := 0
	failed := 0
	for _, c := range []interface {
		Loading() bool
		Err() string
	}{
		m.state.Projects, m.state.Tasks, m.state.Teams.Teams, m.state.Teams.Users,
	} {
		if c.Loading() {
			loading++
		}
		if c.Err() != "" {
			failed++
		}
	}

	if loading > 0 {
		return fmt.Sprintf("syncing (%d)", loading)
	}
	if failed > 0 {
		return fmt.Sprintf("sync failed (%d)", failed)
	}
	return "idle"
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.state.UI.ActiveModal() != nil {
		return "enter submit | esc cancel"
	}
	if m.helpOpen {
		return "? close help | esc back"
	}

	switch m.currentScreen {
	case ScreenProjects:
		return "n new | e edit | d delete | / search | tab sort | F clear | ? help"
	case ScreenTasks:
		return "v view | n new | e edit | d delete | H/L move | f filter | / search | ? help"
	case ScreenCalendar:
		return "v layout | n new | e edit | d delete | H/L year | f status | tab sort | ? help"
	case ScreenTeams:
		return "h/l section | n new | e edit | d delete | enter accept/assign | ? help"
	default:
		return "1-5 screens | r refresh | q quit | ? help"
	}
}

// searching reports whether the active screen's search input has focus.
func (m Model) searching() bool {
	switch m.currentScreen {
	case ScreenProjects:
		return m.projects.Searching()
	case ScreenTasks:
		return m.tasks.Searching()
	default:
		return false
	}
}

// eventPatchOf compiles a full event form submission into a patch.
func eventPatchOf(e model.Event) state.EventPatch {
	return state.EventPatch{
		Title:        &e.Title,
		Type:         &e.Type,
		Date:         &e.Date,
		Time:         &e.Time,
		Duration:     &e.Duration,
		Status:       &e.Status,
		Color:        &e.Color,
		Participants: &e.Participants,
		Description:  &e.Description,
	}
}
