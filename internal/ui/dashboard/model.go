// Package dashboard renders the workspace overview screen: headline
// metrics, recently updated tasks, and upcoming deadlines.
package dashboard

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/keys"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/theme"
	"github.com/nhle/projectflow/internal/views"
)

// recentLimit bounds both dashboard task panels.
const recentLimit = 5

// Model is the dashboard view component.
type Model struct {
	state  *state.AppState
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a dashboard model over the shared application state.
func New(st *state.AppState, k *keys.KeyMap, width, height int) Model {
	return Model{
		state:  st,
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init implements tea.Model; the dashboard has no initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard. The screen is read-only, so
// it only reacts to size changes.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
	}
	return m, nil
}

// View renders the dashboard from current store state.
func (m Model) View() string {
	stats := views.Summarize(
		m.state.Projects.Items(),
		m.state.Tasks.Items(),
		m.state.Teams.Users.Items(),
		m.state.Teams.Teams.Items(),
	)

	statCards := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.statCard("Projects", fmt.Sprintf("%d (%d active)", stats.TotalProjects, stats.ActiveProjects)),
		m.statCard("Tasks", fmt.Sprintf("%d (%d done)", stats.TotalTasks, stats.CompletedTasks)),
		m.statCard("Completion", fmt.Sprintf("%d%%", stats.CompletionRate)),
		m.statCard("Members", fmt.Sprintf("%d in %d teams", stats.TotalUsers, stats.TotalTeams)),
	)

	recent := m.renderTaskPanel("Recent Activity", views.RecentTasks(m.state.Tasks.Items(), recentLimit))
	upcoming := m.renderTaskPanel("Upcoming Deadlines", views.UpcomingDeadlines(m.state.Tasks.Items(), recentLimit))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, recent, upcoming)

	return lipgloss.JoinVertical(lipgloss.Left, statCards, panels)
}

// SetSize updates the dashboard dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) statCard(label, value string) string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)

	return theme.PanelStyle.Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			labelStyle.Render(label),
			valueStyle.Render(value),
		),
	)
}

func (m Model) renderTaskPanel(title string, tasks []model.Task) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	resolver := views.Resolver{State: m.state}

	lines := []string{titleStyle.Render(title)}
	if len(tasks) == 0 {
		lines = append(lines, theme.HelpStyle.Render("nothing here yet"))
	}
	for _, t := range tasks {
		status := theme.TaskStatusStyle(t.Status).Render(string(t.Status))
		line := fmt.Sprintf("%s %s", status, t.Title)
		if t.ProjectID != "" {
			line += theme.HelpStyle.Render("  " + resolver.ProjectName(t.ProjectID))
		}
		lines = append(lines, line)
	}

	width := m.width/2 - 4
	if width < 20 {
		width = 20
	}
	return theme.PanelStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}
