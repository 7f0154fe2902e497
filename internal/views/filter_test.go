package views_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/views"
)

func taskFixtures() []model.Task {
	return []model.Task{
		{ID: "t1", Title: "Design homepage", Status: model.TaskStatusNew, Priority: model.PriorityHigh, ProjectID: "p1"},
		{ID: "t2", Title: "Write API docs", Description: "homepage endpoints", Status: model.TaskStatusInProgress, Priority: model.PriorityLow, ProjectID: "p1"},
		{ID: "t3", Title: "Fix login bug", Status: model.TaskStatusNew, Priority: model.PriorityUrgent, ProjectID: "p2"},
	}
}

func TestFilterTasksQueryMatchesTitleAndDescription(t *testing.T) {
	q := "HOMEPAGE"
	out := views.FilterTasks(taskFixtures(), views.TaskQuery{Query: &q})

	require.Len(t, out, 2)
	assert.Equal(t, "t1", out[0].ID)
	assert.Equal(t, "t2", out[1].ID)
}

func TestFilterTasksCombinesFilters(t *testing.T) {
	status := model.TaskStatusNew
	project := "p1"
	out := views.FilterTasks(taskFixtures(), views.TaskQuery{Status: &status, ProjectID: &project})

	require.Len(t, out, 1)
	assert.Equal(t, "t1", out[0].ID)
}

func TestFilterTasksSortByPriority(t *testing.T) {
	out := views.FilterTasks(taskFixtures(), views.TaskQuery{SortBy: "priority"})

	require.Len(t, out, 3)
	assert.Equal(t, model.PriorityUrgent, out[0].Priority)
	assert.Equal(t, model.PriorityHigh, out[1].Priority)
	assert.Equal(t, model.PriorityLow, out[2].Priority)
}

func TestFilterTasksUnknownSortKeepsInsertionOrder(t *testing.T) {
	out := views.FilterTasks(taskFixtures(), views.TaskQuery{SortBy: "bogus"})

	require.Len(t, out, 3)
	assert.Equal(t, "t1", out[0].ID)
	assert.Equal(t, "t3", out[2].ID)
}

func TestFilterProjectsByTeamSortedByNameDesc(t *testing.T) {
	projects := []model.Project{
		{ID: "p1", Name: "Alpha", TeamID: "team-1"},
		{ID: "p2", Name: "Gamma", TeamID: "team-2"},
		{ID: "p3", Name: "Beta", TeamID: "team-1"},
	}

	team := "team-1"
	out := views.FilterProjects(projects, views.ProjectQuery{
		TeamID:   &team,
		SortBy:   "name",
		SortDesc: true,
	})

	require.Len(t, out, 2)
	assert.Equal(t, "Beta", out[0].Name)
	assert.Equal(t, "Alpha", out[1].Name)
}

func TestFilterUsersSearchesNameEmailDepartment(t *testing.T) {
	users := []model.User{
		{ID: "u1", Name: "Alice", Email: "alice@example.com", Department: "Design"},
		{ID: "u2", Name: "Bob", Email: "bob@design.example.com", Department: "Engineering"},
		{ID: "u3", Name: "Carol", Email: "carol@example.com", Department: "Marketing"},
	}

	q := "design"
	out := views.FilterUsers(users, views.UserQuery{Query: &q})

	require.Len(t, out, 2)
	assert.Equal(t, "u1", out[0].ID)
	assert.Equal(t, "u2", out[1].ID)
}

func TestFilterEventsSortByDate(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Title: "Later", Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "e2", Title: "Sooner", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	out := views.FilterEvents(events, views.EventQuery{SortBy: state.EventSortDate})

	require.Len(t, out, 2)
	assert.Equal(t, "e2", out[0].ID)
	assert.Equal(t, "e1", out[1].ID)
}

func TestFilterEventsByStatusAndType(t *testing.T) {
	events := []model.Event{
		{ID: "e1", Status: model.EventStatusUpcoming, Type: model.EventTypeDesign},
		{ID: "e2", Status: model.EventStatusCompleted, Type: model.EventTypeDesign},
		{ID: "e3", Status: model.EventStatusUpcoming, Type: model.EventTypeWebsite},
	}

	status := model.EventStatusUpcoming
	kind := model.EventTypeDesign
	out := views.FilterEvents(events, views.EventQuery{Status: &status, Type: &kind})

	require.Len(t, out, 1)
	assert.Equal(t, "e1", out[0].ID)
}
