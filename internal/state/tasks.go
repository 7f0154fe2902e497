package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/projectflow/internal/model"
)

// TaskPatch is a partial update to a task. Nil fields are left untouched.
type TaskPatch struct {
	Title          *string
	Description    *string
	Status         *model.TaskStatus
	Priority       *model.Priority
	ProjectID      *string
	AssigneeID     *string
	ReporterID     *string
	DueDate        *time.Time
	EstimatedHours *float64
	ActualHours    *float64
	Tags           *[]string
}

// TaskStore owns the task collection.
type TaskStore struct {
	*Collection[model.Task]
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{Collection: NewCollection[model.Task]()}
}

// Add assigns a fresh ID and creation timestamps and appends the task.
func (s *TaskStore) Add(t model.Task) model.Task {
	ts := now()
	t.ID = uuid.New().String()
	t.CreatedAt = ts
	t.UpdatedAt = ts
	s.Append(t)
	return t
}

// Update merges the patch over the task with the given ID and refreshes
// UpdatedAt. It reports whether the task was found.
func (s *TaskStore) Update(id string, patch TaskPatch) bool {
	return s.Mutate(id, func(t *model.Task) {
		applyTaskPatch(t, patch)
		t.UpdatedAt = now()
	})
}

// SetStatus moves a task to a new workflow state. Moving a task between
// kanban columns is exactly this operation and nothing else.
func (s *TaskStore) SetStatus(id string, status model.TaskStatus) bool {
	return s.Mutate(id, func(t *model.Task) {
		t.Status = status
		t.UpdatedAt = now()
	})
}

// applyTaskPatch copies the patch's non-nil fields onto t.
func applyTaskPatch(t *model.Task, patch TaskPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}
	if patch.ProjectID != nil {
		t.ProjectID = *patch.ProjectID
	}
	if patch.AssigneeID != nil {
		t.AssigneeID = *patch.AssigneeID
	}
	if patch.ReporterID != nil {
		t.ReporterID = *patch.ReporterID
	}
	if patch.DueDate != nil {
		t.DueDate = *patch.DueDate
	}
	if patch.EstimatedHours != nil {
		t.EstimatedHours = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		t.ActualHours = *patch.ActualHours
	}
	if patch.Tags != nil {
		t.Tags = append([]string(nil), (*patch.Tags)...)
	}
}
