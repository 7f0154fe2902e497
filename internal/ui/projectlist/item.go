package projectlist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/theme"
)

// ProjectItem wraps a project together with its resolved display fields so
// it can be used in a bubbles/list.
type ProjectItem struct {
	Project    model.Project
	TeamName   string
	OwnerName  string
	FolderName string
}

// FilterValue returns the string used for fuzzy filtering.
func (i ProjectItem) FilterValue() string { return i.Project.Name }

// Title returns the project name for the list.
func (i ProjectItem) Title() string { return i.Project.Name }

// ProjectDelegate implements list.ItemDelegate for project rows.
type ProjectDelegate struct{}

// Height returns the number of lines each item takes.
func (d ProjectDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ProjectDelegate) Spacing() int { return 0 }

// Update handles per-item messages.
func (d ProjectDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single project line.
func (d ProjectDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	pi, ok := item.(ProjectItem)
	if !ok {
		return
	}
	p := pi.Project

	statusBadge := theme.ProjectStatusStyle(p.Status).Render(string(p.Status))
	priBadge := theme.PriorityStyle(p.Priority).Render(priorityLabel(p.Priority))
	progress := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(fmt.Sprintf("%3d%%", p.Progress))

	due := ""
	if !p.DueDate.IsZero() {
		due = lipgloss.NewStyle().
			Foreground(dueColor(p.DueDate, p.Status)).
			Render(" due " + p.DueDate.Format("Jan 02"))
	}

	folder := ""
	if pi.FolderName != "" {
		folder = theme.HelpStyle.Render("  [" + pi.FolderName + "]")
	}

	line := fmt.Sprintf(
		"%s %s %s %s  %s%s%s",
		statusBadge, priBadge, progress, p.Name,
		theme.HelpStyle.Render(pi.TeamName), due, folder,
	)

	if index == m.Index() {
		line = theme.SelectedItemStyle.Render(line)
	} else {
		line = theme.ListItemStyle.Render(line)
	}

	fmt.Fprint(w, line)
}

// priorityLabel returns a short label for the given priority level.
func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityUrgent:
		return "P1"
	case model.PriorityHigh:
		return "P2"
	case model.PriorityMedium:
		return "P3"
	case model.PriorityLow:
		return "P4"
	default:
		return "P?"
	}
}

// dueColor picks the due date color, flagging past-due open projects.
func dueColor(due time.Time, status model.ProjectStatus) lipgloss.AdaptiveColor {
	open := status == model.ProjectStatusActive || status == model.ProjectStatusOnHold
	if open && due.Before(time.Now()) {
		return theme.ColorRed
	}
	return theme.ColorGray
}
