package views

import (
	"sort"

	"github.com/nhle/projectflow/internal/model"
)

// priorityRank orders priorities from most to least urgent for sorting.
var priorityRank = map[model.Priority]int{
	model.PriorityUrgent: 0,
	model.PriorityHigh:   1,
	model.PriorityMedium: 2,
	model.PriorityLow:    3,
}

// sortTasks stably sorts tasks in place by the given key. An unknown or
// empty key leaves insertion order untouched.
func sortTasks(tasks []model.Task, by string, desc bool) {
	var less func(a, b model.Task) bool

	switch by {
	case "title":
		less = func(a, b model.Task) bool { return a.Title < b.Title }
	case "status":
		less = func(a, b model.Task) bool { return a.Status < b.Status }
	case "priority":
		less = func(a, b model.Task) bool {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
	case "due_date":
		less = func(a, b model.Task) bool { return a.DueDate.Before(b.DueDate) }
	case "created_at":
		less = func(a, b model.Task) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b model.Task) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if desc {
			return less(tasks[j], tasks[i])
		}
		return less(tasks[i], tasks[j])
	})
}

// sortProjects stably sorts projects in place by the given key.
func sortProjects(projects []model.Project, by string, desc bool) {
	var less func(a, b model.Project) bool

	switch by {
	case "name":
		less = func(a, b model.Project) bool { return a.Name < b.Name }
	case "status":
		less = func(a, b model.Project) bool { return a.Status < b.Status }
	case "priority":
		less = func(a, b model.Project) bool {
			return priorityRank[a.Priority] < priorityRank[b.Priority]
		}
	case "progress":
		less = func(a, b model.Project) bool { return a.Progress < b.Progress }
	case "due_date":
		less = func(a, b model.Project) bool { return a.DueDate.Before(b.DueDate) }
	case "updated_at":
		less = func(a, b model.Project) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return
	}

	sort.SliceStable(projects, func(i, j int) bool {
		if desc {
			return less(projects[j], projects[i])
		}
		return less(projects[i], projects[j])
	})
}
