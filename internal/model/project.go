package model

import "time"

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusArchived  ProjectStatus = "archived"
)

// Priority levels shared by projects and tasks.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Project is a tracked body of work owned by a team.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Priority    Priority      `json:"priority"`

	// StartDate and DueDate are date-valued; only the calendar day is
	// significant.
	StartDate time.Time `json:"start_date"`
	DueDate   time.Time `json:"due_date"`

	// Progress is a percentage in [0, 100].
	Progress int `json:"progress"`

	// TeamID and OwnerID reference a Team and User. References may dangle
	// after a delete; readers resolve them through views.Resolver.
	TeamID  string `json:"team_id"`
	OwnerID string `json:"owner_id"`

	// FolderID is the folder this project belongs to, or empty. This is the
	// authoritative membership direction; folders never carry project lists.
	FolderID string `json:"folder_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EntityID implements state.Entity.
func (p Project) EntityID() string { return p.ID }

// ProjectFolder is a named grouping of projects. Membership is derived from
// Project.FolderID.
type ProjectFolder struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// EntityID implements state.Entity.
func (f ProjectFolder) EntityID() string { return f.ID }
