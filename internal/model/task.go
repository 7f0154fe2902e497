package model

import "time"

// TaskStatus is the workflow state of a task. The five states double as the
// fixed kanban columns, in this order.
type TaskStatus string

const (
	TaskStatusNew        TaskStatus = "new"
	TaskStatusScheduled  TaskStatus = "scheduled"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusBlocked    TaskStatus = "blocked"
)

// TaskStatuses lists every task status in kanban column order.
var TaskStatuses = []TaskStatus{
	TaskStatusNew,
	TaskStatusScheduled,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusBlocked,
}

// Task is a unit of work within a project.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`

	ProjectID  string `json:"project_id"`
	AssigneeID string `json:"assignee_id"`
	ReporterID string `json:"reporter_id"`

	// DueDate is date-valued; only the calendar day is significant.
	DueDate time.Time `json:"due_date"`

	EstimatedHours float64  `json:"estimated_hours"`
	ActualHours    float64  `json:"actual_hours"`
	Tags           []string `json:"tags,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements state.Entity.
func (t Task) EntityID() string { return t.ID }
