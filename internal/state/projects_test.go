package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

func TestProjectAddClampsProgress(t *testing.T) {
	s := state.NewProjectStore()

	over := s.Add(model.Project{Name: "Overshoot", Progress: 150})
	assert.Equal(t, 100, over.Progress)

	under := s.Add(model.Project{Name: "Undershoot", Progress: -10})
	assert.Equal(t, 0, under.Progress)
}

func TestProjectUpdateReportsMiss(t *testing.T) {
	s := state.NewProjectStore()
	p := s.Add(model.Project{Name: "Website", Status: model.ProjectStatusActive})

	status := model.ProjectStatusCompleted
	progress := 100
	require.True(t, s.Update(p.ID, state.ProjectPatch{Status: &status, Progress: &progress}))

	got, _ := s.Get(p.ID)
	assert.Equal(t, model.ProjectStatusCompleted, got.Status)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, "Website", got.Name)

	assert.False(t, s.Update("missing", state.ProjectPatch{Status: &status}))
}

func TestProjectUpdateClampsProgress(t *testing.T) {
	s := state.NewProjectStore()
	p := s.Add(model.Project{Name: "Website"})

	progress := 400
	require.True(t, s.Update(p.ID, state.ProjectPatch{Progress: &progress}))

	got, _ := s.Get(p.ID)
	assert.Equal(t, 100, got.Progress)
}

func TestRemoveFolderLeavesProjectReference(t *testing.T) {
	s := state.NewProjectStore()
	folder := s.AddFolder("Active Projects", "#3B82F6")
	p := s.Add(model.Project{Name: "Website", FolderID: folder.ID})

	require.True(t, s.RemoveFolder(folder.ID))
	assert.False(t, s.RemoveFolder(folder.ID))

	// The project keeps its FolderID; readers treat the dangling
	// reference as "no folder".
	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, folder.ID, got.FolderID)

	_, ok = s.Folders.Get(folder.ID)
	assert.False(t, ok)
}

func TestProjectUpdateRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	restore := state.SetNow(func() time.Time { return created })
	defer restore()

	s := state.NewProjectStore()
	p := s.Add(model.Project{Name: "Website"})
	require.True(t, p.CreatedAt.Equal(created))
	require.True(t, p.UpdatedAt.Equal(created))

	edited := created.Add(time.Minute)
	state.SetNow(func() time.Time { return edited })

	name := "Website Redesign"
	require.True(t, s.Update(p.ID, state.ProjectPatch{Name: &name}))

	got, _ := s.Get(p.ID)
	assert.True(t, got.UpdatedAt.Equal(edited))
	assert.False(t, got.UpdatedAt.Before(p.UpdatedAt))
	// Creation time is immutable.
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestTaskSetStatusRefreshesUpdatedAt(t *testing.T) {
	created := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	restore := state.SetNow(func() time.Time { return created })
	defer restore()

	s := state.NewTaskStore()
	task := s.Add(model.Task{Title: "Wireframes", Status: model.TaskStatusNew})

	moved := created.Add(time.Minute)
	state.SetNow(func() time.Time { return moved })

	require.True(t, s.SetStatus(task.ID, model.TaskStatusInProgress))

	got, _ := s.Get(task.ID)
	assert.True(t, got.UpdatedAt.Equal(moved))
	assert.True(t, got.CreatedAt.Equal(created))
}

func TestTaskSetStatus(t *testing.T) {
	s := state.NewTaskStore()
	task := s.Add(model.Task{Title: "Wireframes", Status: model.TaskStatusNew})

	require.True(t, s.SetStatus(task.ID, model.TaskStatusInProgress))

	got, _ := s.Get(task.ID)
	assert.Equal(t, model.TaskStatusInProgress, got.Status)

	assert.False(t, s.SetStatus("missing", model.TaskStatusBlocked))
}
