package views

import (
	"sort"

	"github.com/nhle/projectflow/internal/model"
)

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalProjects  int
	ActiveProjects int
	TotalTasks     int
	CompletedTasks int
	TotalUsers     int
	TotalTeams     int

	// CompletionRate is the rounded percentage of completed tasks. It is
	// defined as 0 when there are no tasks.
	CompletionRate int
}

// Summarize computes the dashboard stats from current collections.
func Summarize(
	projects []model.Project,
	tasks []model.Task,
	users []model.User,
	teams []model.Team,
) Stats {
	s := Stats{
		TotalProjects: len(projects),
		TotalTasks:    len(tasks),
		TotalUsers:    len(users),
		TotalTeams:    len(teams),
	}
	for _, p := range projects {
		if p.Status == model.ProjectStatusActive {
			s.ActiveProjects++
		}
	}
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			s.CompletedTasks++
		}
	}
	if s.TotalTasks > 0 {
		s.CompletionRate = int(float64(s.CompletedTasks)/float64(s.TotalTasks)*100 + 0.5)
	}
	return s
}

// RecentTasks returns the n most recently updated tasks, newest first.
func RecentTasks(tasks []model.Task, n int) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].UpdatedAt.Before(out[i].UpdatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// UpcomingDeadlines returns the n incomplete tasks with the nearest due
// dates, soonest first.
func UpcomingDeadlines(tasks []model.Task, n int) []model.Task {
	var out []model.Task
	for _, t := range tasks {
		if t.Status != model.TaskStatusCompleted {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
