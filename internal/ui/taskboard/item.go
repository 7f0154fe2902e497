package taskboard

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

// TaskItem wraps a task together with its resolved display fields so it
// can be used in a bubbles/list.
type TaskItem struct {
	Task         model.Task
	ProjectName  string
	AssigneeName string
}

// FilterValue returns the string used for fuzzy filtering.
func (i TaskItem) FilterValue() string { return i.Task.Title }

// Title returns the task title for the list.
func (i TaskItem) Title() string { return i.Task.Title }

// TaskDelegate implements list.ItemDelegate for task rows.
type TaskDelegate struct{}

// Height returns the number of lines each item takes.
func (d TaskDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d TaskDelegate) Spacing() int { return 0 }

// Update handles per-item messages.
func (d TaskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single task line.
func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TaskItem)
	if !ok {
		return
	}
	t := ti.Task

	statusBadge := theme.TaskStatusStyle(t.Status).Render(string(t.Status))
	priBadge := theme.PriorityStyle(t.Priority).Render(priorityLabel(t.Priority))

	meta := ti.ProjectName
	if ti.AssigneeName != "" {
		if meta != "" {
			meta += " / "
		}
		meta += ti.AssigneeName
	}

	due := ""
	if !t.DueDate.IsZero() {
		color := theme.ColorGray
		if t.Status != model.TaskStatusCompleted && t.DueDate.Before(time.Now()) {
			color = theme.ColorRed
		}
		due = lipgloss.NewStyle().
			Foreground(color).
			Render(" due " + t.DueDate.Format("Jan 02"))
	}

	line := fmt.Sprintf(
		"%s %s %s  %s%s",
		statusBadge, priBadge, t.Title,
		theme.HelpStyle.Render(meta), due,
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
