package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/views"
)

func TestSummarize(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Status: model.ProjectStatusActive},
		{ID: "p2", Status: model.ProjectStatusCompleted},
		{ID: "p3", Status: model.ProjectStatusActive},
	}
	tasks := []model.Task{
		{ID: "t1", Status: model.TaskStatusCompleted},
		{ID: "t2", Status: model.TaskStatusNew},
		{ID: "t3", Status: model.TaskStatusCompleted},
		{ID: "t4", Status: model.TaskStatusBlocked},
	}
	users := []model.User{{ID: "u1"}, {ID: "u2"}}
	teams := []model.Team{{ID: "tm1"}}

	s := views.Summarize(projects, tasks, users, teams)

	assert.Equal(t, 3, s.TotalProjects)
	assert.Equal(t, 2, s.ActiveProjects)
	assert.Equal(t, 4, s.TotalTasks)
	assert.Equal(t, 2, s.CompletedTasks)
	assert.Equal(t, 2, s.TotalUsers)
	assert.Equal(t, 1, s.TotalTeams)
	assert.Equal(t, 50, s.CompletionRate)
}

func TestSummarizeNoTasksHasZeroRate(t *testing.T) {
	s := views.Summarize(nil, nil, nil, nil)
	assert.Zero(t, s.CompletionRate)
}

func TestSummarizeRoundsRate(t *testing.T) {
	tasks := []model.Task{
		{ID: "t1", Status: model.TaskStatusCompleted},
		{ID: "t2", Status: model.TaskStatusNew},
		{ID: "t3", Status: model.TaskStatusNew},
	}
	s := views.Summarize(nil, tasks, nil, nil)

	// 1/3 rounds to 33.
	assert.Equal(t, 33, s.CompletionRate)
}

func TestRecentTasksNewestFirst(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "old", UpdatedAt: base},
		{ID: "newest", UpdatedAt: base.Add(48 * time.Hour)},
		{ID: "mid", UpdatedAt: base.Add(24 * time.Hour)},
	}

	out := views.RecentTasks(tasks, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "newest", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
}

func TestUpcomingDeadlinesSkipsCompleted(t *testing.T) {
	base := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		{ID: "done", Status: model.TaskStatusCompleted, DueDate: base},
		{ID: "later", Status: model.TaskStatusNew, DueDate: base.AddDate(0, 0, 10)},
		{ID: "soon", Status: model.TaskStatusInProgress, DueDate: base.AddDate(0, 0, 2)},
	}

	out := views.UpcomingDeadlines(tasks, 5)
	require.Len(t, out, 2)
	assert.Equal(t, "soon", out[0].ID)
	assert.Equal(t, "later", out[1].ID)
}
