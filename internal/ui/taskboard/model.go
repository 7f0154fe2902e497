// Package taskboard renders the task collection in three switchable
// layouts: a flat list, a table, and a five-column kanban board.
package taskboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/theme"
	"github.com/nhle/projectflow/internal/views"
)

// TasksLoadedMsg is sent when the filtered task listing has been
// recomputed from the stores.
type TasksLoadedMsg struct {
	Items []TaskItem
}

// NewTaskMsg asks the app to open the create-task form.
type NewTaskMsg struct{}

// EditTaskMsg asks the app to open the edit form for a task.
type EditTaskMsg struct {
	ID string
}

// DeleteTaskMsg asks the app to delete a task.
type DeleteTaskMsg struct {
	ID string
}

// MoveTaskMsg asks the app to move a task to another workflow state. A
// kanban column move is exactly a status change.
type MoveTaskMsg struct {
	ID     string
	Status model.TaskStatus
}

// sortModes defines the available sort keys cycled by Tab.
var sortModes = []string{
	"updated_at",
	"title",
	"status",
	"priority",
	"due_date",
}

// viewModes is the cycle order for the v key.
var viewModes = []state.ViewMode{
	state.ViewModeList,
	state.ViewModeTable,
	state.ViewModeKanban,
}

// Model is the task board view component.
type Model struct {
	list  list.Model
	table table.Model
	state *state.AppState
	keys  *keys.KeyMap

	items   []TaskItem
	columns []views.KanbanColumn

	// Kanban cursor.
	colIndex int
	rowIndex int

	sortIndex   int
	statusIndex int // 0 = no status filter, 1..n = TaskStatuses[n-1]
	searchMode  bool
	searchInput textinput.Model
	width       int
	height      int
}

// New creates a new task board model.
func New(st *state.AppState, k *keys.KeyMap, width, height int) Model {
	l := list.New([]list.Item{}, TaskDelegate{}, width, height-2)
	l.Title = "Tasks"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	t := table.New(
		table.WithColumns(tableColumns(width)),
		table.WithFocused(true),
		table.WithHeight(height-3),
	)

	si := textinput.New()
	si.Placeholder = "search tasks..."
	si.Prompt = "/ "
	si.Width = width - 4

	return Model{
		list:        l,
		table:       t,
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

// Update handles messages for the task board view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TasksLoadedMsg:
		m.items = msg.Items
		m.columns = views.Kanban(tasksOf(msg.Items))
		m.clampKanbanCursor()

		items := make([]list.Item, len(msg.Items))
		rows := make([]table.Row, len(msg.Items))
		for i, it := range msg.Items {
			items[i] = it
			rows[i] = tableRow(it)
		}
		m.table.SetRows(rows)
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKeys(msg)
		}
		return m.handleNormalKeys(msg)
	}

	return m.updateActiveLayout(msg)
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

	case key.Matches(msg, m.keys.CycleView):
		m.state.UI.SetCurrentView(nextViewMode(m.state.UI.CurrentView()))
		return m, nil

	case key.Matches(msg, m.keys.CycleStatusFilter):
		m.statusIndex = (m.statusIndex + 1) % (len(model.TaskStatuses) + 1)
		if m.statusIndex == 0 {
			m.state.UI.SetFilterStatus(nil)
		} else {
			st := model.TaskStatuses[m.statusIndex-1]
			m.state.UI.SetFilterStatus(&st)
		}
		return m, m.Reload()

	case key.Matches(msg, m.keys.ClearFilters):
		m.statusIndex = 0
		m.searchInput.Reset()
		m.state.UI.ClearFilters()
		return m, m.Reload()

	case key.Matches(msg, m.keys.CycleSort):
		m.sortIndex = (m.sortIndex + 1) % len(sortModes)
		m.state.UI.SetSort(sortModes[m.sortIndex], m.state.UI.SortOrder())
		return m, m.Reload()

	case key.Matches(msg, m.keys.New):
		return m, func() tea.Msg { return NewTaskMsg{} }

	case key.Matches(msg, m.keys.Edit):
		if id, ok := m.SelectedID(); ok {
			return m, func() tea.Msg { return EditTaskMsg{ID: id} }
		}

	case key.Matches(msg, m.keys.Delete):
		if id, ok := m.SelectedID(); ok {
			return m, func() tea.Msg { return DeleteTaskMsg{ID: id} }
		}
	}

	if m.state.UI.CurrentView() == state.ViewModeKanban {
		return m.handleKanbanKeys(msg)
	}
	return m.updateActiveLayout(msg)
}

// handleKanbanKeys moves the kanban cursor and issues column moves.
func (m Model) handleKanbanKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.colIndex > 0 {
			m.colIndex--
			m.clampKanbanCursor()
		}

	case key.Matches(msg, m.keys.Right):
		if m.colIndex < len(m.columns)-1 {
			m.colIndex++
			m.clampKanbanCursor()
		}

	case key.Matches(msg, m.keys.Up):
		if m.rowIndex > 0 {
			m.rowIndex--
		}

	case key.Matches(msg, m.keys.Down):
		if col := m.currentColumn(); col != nil && m.rowIndex < len(col.Tasks)-1 {
			m.rowIndex++
		}

	case key.Matches(msg, m.keys.MoveLeft):
		if task, ok := m.kanbanSelected(); ok && m.colIndex > 0 {
			status := m.columns[m.colIndex-1].Status
			id := task.ID
			return m, func() tea.Msg { return MoveTaskMsg{ID: id, Status: status} }
		}

	case key.Matches(msg, m.keys.MoveRight):
		if task, ok := m.kanbanSelected(); ok && m.colIndex < len(m.columns)-1 {
			status := m.columns[m.colIndex+1].Status
			id := task.ID
			return m, func() tea.Msg { return MoveTaskMsg{ID: id, Status: status} }
		}
	}

	return m, nil
}

// updateActiveLayout forwards messages to the list or table widget.
func (m Model) updateActiveLayout(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state.UI.CurrentView() {
	case state.ViewModeTable:
		m.table, cmd = m.table.Update(msg)
	case state.ViewModeKanban:
		// Kanban keeps its own cursor; nothing to forward.
	default:
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// Searching reports whether the search input has focus.
func (m Model) Searching() bool {
	return m.searchMode
}

// SelectedID returns the highlighted task's ID in the active layout.
func (m Model) SelectedID() (string, bool) {
	switch m.state.UI.CurrentView() {
	case state.ViewModeKanban:
		if task, ok := m.kanbanSelected(); ok {
			return task.ID, true
		}
		return "", false

	case state.ViewModeTable:
		cursor := m.table.Cursor()
		if cursor < 0 || cursor >= len(m.items) {
			return "", false
		}
		return m.items[cursor].Task.ID, true

	default:
		item, ok := m.list.SelectedItem().(TaskItem)
		if !ok {
			return "", false
		}
		return item.Task.ID, true
	}
}

// kanbanSelected returns the task under the kanban cursor.
func (m Model) kanbanSelected() (model.Task, bool) {
	col := m.currentColumn()
	if col == nil || m.rowIndex >= len(col.Tasks) {
		return model.Task{}, false
	}
	return col.Tasks[m.rowIndex], true
}

func (m Model) currentColumn() *views.KanbanColumn {
	if m.colIndex < 0 || m.colIndex >= len(m.columns) {
		return nil
	}
	return &m.columns[m.colIndex]
}

// clampKanbanCursor keeps the cursor inside the current column.
func (m *Model) clampKanbanCursor() {
	col := m.currentColumn()
	if col == nil || len(col.Tasks) == 0 {
		m.rowIndex = 0
		return
	}
	if m.rowIndex >= len(col.Tasks) {
		m.rowIndex = len(col.Tasks) - 1
	}
}

// View renders the task board in the active layout.
func (m Model) View() string {
	var content string
	switch m.state.UI.CurrentView() {
	case state.ViewModeTable:
		content = m.table.View()
	case state.ViewModeKanban:
		content = m.renderKanban()
	default:
		content = m.list.View()
	}

	if m.searchMode {
		searchBar := lipgloss.NewStyle().
			Foreground(theme.ColorWhite).
			Padding(0, 1).
			Render(m.searchInput.View())
		return lipgloss.JoinVertical(lipgloss.Left, searchBar, content)
	}

	if len(m.items) == 0 {
		return m.renderEmptyState()
	}
	return content
}

// renderKanban draws the five status columns side by side.
func (m Model) renderKanban() string {
	colWidth := m.width/len(model.TaskStatuses) - 2
	if colWidth < 14 {
		colWidth = 14
	}

	rendered := make([]string, 0, len(m.columns))
	for ci, col := range m.columns {
		header := theme.TaskStatusStyle(col.Status).Render(
			fmt.Sprintf("%s (%d)", col.Status, len(col.Tasks)),
		)

		lines := []string{header}
		for ri, t := range col.Tasks {
			line := theme.PriorityStyle(t.Priority).Render(priorityLabel(t.Priority)) + " " + t.Title
			if ci == m.colIndex && ri == m.rowIndex {
				line = theme.SelectedItemStyle.Render(line)
			} else {
				line = theme.ListItemStyle.Render(line)
			}
			lines = append(lines, line)
		}

		panel := theme.PanelStyle.Width(colWidth)
		if ci == m.colIndex {
			panel = panel.BorderForeground(theme.ColorBlue)
		}
		rendered = append(rendered, panel.Render(
			lipgloss.JoinVertical(lipgloss.Left, lines...),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderEmptyState shows guidance text when no tasks match.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	if m.state.UI.SearchQuery() != "" || m.state.UI.FilterStatus() != nil {
		return style.Render("No matching tasks.\nPress F to clear filters.")
	}
	return style.Render("No tasks yet.\n\nPress n to create one.")
}

// Reload returns a tea.Cmd that recomputes the listing from the stores
// using the shared search, filter, and sort selections.
func (m Model) Reload() tea.Cmd {
	st := m.state
	return func() tea.Msg {
		q := views.TaskQuery{
			Status:   st.UI.FilterStatus(),
			Priority: st.UI.FilterPriority(),
			SortBy:   st.UI.SortBy(),
			SortDesc: st.UI.SortOrder() == state.SortDesc,
		}
		if query := st.UI.SearchQuery(); query != "" {
			q.Query = &query
		}

		resolver := views.Resolver{State: st}
		tasks := views.FilterTasks(st.Tasks.Items(), q)

		items := make([]TaskItem, 0, len(tasks))
		for _, t := range tasks {
			item := TaskItem{Task: t}
			if t.ProjectID != "" {
				item.ProjectName = resolver.ProjectName(t.ProjectID)
			}
			if t.AssigneeID != "" {
				item.AssigneeName = resolver.UserName(t.AssigneeID)
			}
			items = append(items, item)
		}
		return TasksLoadedMsg{Items: items}
	}
}

// SetSize updates the board dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
	m.table.SetColumns(tableColumns(width))
	m.table.SetHeight(height - 3)
	m.searchInput.Width = width - 4
}

// tasksOf strips the display wrappers back to bare tasks.
func tasksOf(items []TaskItem) []model.Task {
	tasks := make([]model.Task, len(items))
	for i, it := range items {
		tasks[i] = it.Task
	}
	return tasks
}

// tableColumns sizes the table columns for the given total width.
func tableColumns(width int) []table.Column {
	title := width - 56
	if title < 20 {
		title = 20
	}
	return []table.Column{
		{Title: "Task", Width: title},
		{Title: "Status", Width: 12},
		{Title: "Priority", Width: 8},
		{Title: "Project", Width: 16},
		{Title: "Assignee", Width: 14},
		{Title: "Due", Width: 6},
	}
}

// tableRow formats one task as a table row.
func tableRow(it TaskItem) table.Row {
	due := ""
	if !it.Task.DueDate.IsZero() {
		due = it.Task.DueDate.Format("Jan 02")
	}
	return table.Row{
		it.Task.Title,
		string(it.Task.Status),
		string(it.Task.Priority),
		it.ProjectName,
		it.AssigneeName,
		due,
	}
}

// nextViewMode cycles list, table, kanban.
func nextViewMode(current state.ViewMode) state.ViewMode {
	for i, v := range viewModes {
		if v == current {
			return viewModes[(i+1)%len(viewModes)]
		}
	}
	return viewModes[0]
}
