// Package views contains the derived view engine: pure functions computed
// on demand from current store state. Nothing here mutates a store.
package views

import (
	"sort"
	"strings"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

// TaskQuery controls filtering and sorting for task listings. Nil filter
// fields mean "all". An empty SortBy preserves store insertion order.
type TaskQuery struct {
	Query     *string
	Status    *model.TaskStatus
	Priority  *model.Priority
	ProjectID *string
	SortBy    string // "title", "status", "priority", "due_date", "created_at", "updated_at"
	SortDesc  bool
}

// FilterTasks returns the tasks matching q, sorted per q. The input slice
// is not modified.
func FilterTasks(tasks []model.Task, q TaskQuery) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Query != nil && !matchText(*q.Query, t.Title, t.Description) {
			continue
		}
		if q.Status != nil && t.Status != *q.Status {
			continue
		}
		if q.Priority != nil && t.Priority != *q.Priority {
			continue
		}
		if q.ProjectID != nil && t.ProjectID != *q.ProjectID {
			continue
		}
		out = append(out, t)
	}

	sortTasks(out, q.SortBy, q.SortDesc)
	return out
}

// ProjectQuery controls filtering and sorting for project listings.
type ProjectQuery struct {
	Query    *string
	Status   *model.ProjectStatus
	Priority *model.Priority
	TeamID   *string
	FolderID *string
	SortBy   string // "name", "status", "priority", "progress", "due_date", "updated_at"
	SortDesc bool
}

// FilterProjects returns the projects matching q, sorted per q.
func FilterProjects(projects []model.Project, q ProjectQuery) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if q.Query != nil && !matchText(*q.Query, p.Name, p.Description) {
			continue
		}
		if q.Status != nil && p.Status != *q.Status {
			continue
		}
		if q.Priority != nil && p.Priority != *q.Priority {
			continue
		}
		if q.TeamID != nil && p.TeamID != *q.TeamID {
			continue
		}
		if q.FolderID != nil && p.FolderID != *q.FolderID {
			continue
		}
		out = append(out, p)
	}

	sortProjects(out, q.SortBy, q.SortDesc)
	return out
}

// UserQuery controls filtering for user listings. Search covers name,
// email, and department.
type UserQuery struct {
	Query  *string
	Role   *model.Role
	TeamID *string
}

// FilterUsers returns the users matching q in insertion order.
func FilterUsers(users []model.User, q UserQuery) []model.User {
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if q.Query != nil && !matchText(*q.Query, u.Name, u.Email, u.Department) {
			continue
		}
		if q.Role != nil && u.Role != *q.Role {
			continue
		}
		if q.TeamID != nil && u.TeamID != *q.TeamID {
			continue
		}
		out = append(out, u)
	}
	return out
}

// EventQuery controls filtering and sorting for the chronology listing.
type EventQuery struct {
	Query  *string
	Status *model.EventStatus
	Type   *model.EventType
	SortBy state.EventSort
}

// FilterEvents returns the events matching q, ordered per q.SortBy. The
// default sort preserves insertion order.
func FilterEvents(events []model.Event, q EventQuery) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, e := range events {
		if q.Query != nil && !matchText(*q.Query, e.Title, e.Description) {
			continue
		}
		if q.Status != nil && e.Status != *q.Status {
			continue
		}
		if q.Type != nil && e.Type != *q.Type {
			continue
		}
		out = append(out, e)
	}

	switch q.SortBy {
	case state.EventSortDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Date.Before(out[j].Date)
		})
	case state.EventSortType:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Type < out[j].Type
		})
	case state.EventSortStatus:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	}
	return out
}

// matchText reports whether query is a case-insensitive substring of any
// of the fields. An empty query matches everything.
func matchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
