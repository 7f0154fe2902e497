// Package projectlist renders the project collection with search, team
// filtering, and sorting over the shared state.
package projectlist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/theme"
	"github.com/nhle/projectflow/internal/views"
)

// ProjectsLoadedMsg is sent when the filtered project listing has been
// recomputed from the stores.
type ProjectsLoadedMsg struct {
	Items []ProjectItem
}

// NewProjectMsg asks the app to open the create-project form.
type NewProjectMsg struct{}

// EditProjectMsg asks the app to open the edit form for a project.
type EditProjectMsg struct {
	ID string
}

// DeleteProjectMsg asks the app to delete a project.
type DeleteProjectMsg struct {
	ID string
}

// sortModes defines the available sort keys cycled by Tab.
var sortModes = []string{
	"updated_at",
	"name",
	"status",
	"priority",
	"progress",
	"due_date",
}

// Model is the project list view component.
type Model struct {
	list        list.Model
	state       *state.AppState
	keys        *keys.KeyMap
	sortIndex   int
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new project list model.
func New(st *state.AppState, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, ProjectDelegate{}, width, height-2)
	l.Title = "Projects"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	si := textinput.New()
	si.Placeholder = "search projects..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		state:       st,
		keys:        k,
		searchInput: si,
		width:       width,
		height:      height,
	}
}

// Init returns a command that loads the initial listing.
func (m Model) Init() tea.Cmd {
	return m.Reload()
}

// Update handles messages for the project list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProjectsLoadedMsg:
		items := make([]list.Item, len(msg.Items))
		for i, it := range msg.Items {
			items[i] = it
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSearchKeys processes key input while in search mode.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.state.UI.SetSearchQuery(m.searchInput.Value())
		return m, m.Reload()

	case "esc":
		m.searchMode = false
		m.searchInput.Reset()
		m.state.UI.SetSearchQuery("")
		return m, m.Reload()
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// handleNormalKeys processes key input in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searchMode = true
		m.searchInput.Reset()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewProjectMsg{} }

	case key.Matches(msg, m.keys.Edit):
		if item, ok := m.selected(); ok {
			id := item.Project.ID
			return m, func() tea.Msg { return EditProjectMsg{ID: id} }
		}

	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.selected(); ok {
			id := item.Project.ID
			return m, func() tea.Msg { return DeleteProjectMsg{ID: id} }
		}

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIndex = (m.sortIndex + 1) % len(sortModes)
		m.state.UI.SetSort(sortModes[m.sortIndex], m.state.UI.SortOrder())
		return m, m.Reload()

	case key.Matches(msg, m.keys.ClearFilters):
		m.searchInput.Reset()
		m.state.UI.ClearFilters()
		return m, m.Reload()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// selected returns the currently highlighted project, if any.
func (m Model) selected() (ProjectItem, bool) {
	item, ok := m.list.SelectedItem().(ProjectItem)
	return item, ok
}

// SelectedID returns the highlighted project's ID, if any.
func (m Model) SelectedID() (string, bool) {
	item, ok := m.selected()
	if !ok {
		return "", false
	}
	return item.Project.ID, true
}

// View renders the project list view.
func (m Model) View() string {
	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, m.list.View())
	}

	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}

	return m.list.View()
}

// renderEmptyState shows guidance text when no projects match.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.state.UI.SearchQuery() != "" || m.state.UI.FilterTeam() != nil {
		return style.Render("No matching projects.\nPress F to clear filters.")
	}
	return style.Render("No projects yet.\n\nPress n to create one.")
}

// Reload returns a tea.Cmd that recomputes the listing from the stores
// using the shared search, filter, and sort selections.
func (m Model) Reload() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		q := views.ProjectQuery{
			TeamID:   st.UI.FilterTeam(),
			SortBy:   st.UI.SortBy(),
			SortDesc: st.UI.SortOrder() == state.SortDesc,
		}
		if query := st.UI.SearchQuery(); query != "" {
			q.Query = &query
		}

		resolver := views.Resolver{State: st}
		projects := views.FilterProjects(st.Projects.Items(), q)

		items := make([]ProjectItem, 0, len(projects))
		for _, p := range projects {
			item := ProjectItem{
				Project:   p,
				OwnerName: resolver.UserName(p.OwnerID),
			}
			if p.TeamID != "" {
				item.TeamName = resolver.TeamName(p.TeamID)
			}
			if p.FolderID != "" {
				if f, ok := st.Projects.Folders.Get(p.FolderID); ok {
					item.FolderName = f.Name
				}
			}
			items = append(items, item)
		}
		return ProjectsLoadedMsg{Items: items}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.searchInput.Width = width - 4
}
