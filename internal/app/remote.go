package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

// requestTimeout bounds a single write request to the server.
const requestTimeout = 30 * time.Second

// Result messages for server writes. Local stores are only touched after
// the server confirms, so a failed write leaves state exactly as it was.
type (
	projectCreatedResultMsg struct {
		project model.Project
		err     error
	}
	projectUpdatedResultMsg struct {
		id    string
		patch state.ProjectPatch
		err   error
	}
	projectDeletedResultMsg struct {
		id  string
		err error
	}

	taskCreatedResultMsg struct {
		task model.Task
		err  error
	}
	taskUpdatedResultMsg struct {
		id    string
		patch state.TaskPatch
		err   error
	}
	taskDeletedResultMsg struct {
		id  string
		err error
	}

	teamCreatedResultMsg struct {
		team model.Team
		err  error
	}
	teamUpdatedResultMsg struct {
		id    string
		patch state.TeamPatch
		err   error
	}
	teamDeletedResultMsg struct {
		id  string
		err error
	}

	userCreatedResultMsg struct {
		user model.User
		err  error
	}
	userUpdatedResultMsg struct {
		id    string
		patch state.UserPatch
		err   error
	}
	userDeletedResultMsg struct {
		id  string
		err error
	}
)

func (m *Model) createProject(p model.Project) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := facade.CreateProject(ctx, p)
		return projectCreatedResultMsg{project: created, err: err}
	}
}

func (m *Model) updateProject(id string, patch state.ProjectPatch) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := facade.UpdateProject(ctx, id, patch)
		return projectUpdatedResultMsg{id: id, patch: patch, err: err}
	}
}

func (m *Model) deleteProject(id string) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := facade.DeleteProject(ctx, id)
		return projectDeletedResultMsg{id: id, err: err}
	}
}

func (m *Model) createTask(t model.Task) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := facade.CreateTask(ctx, t)
		return taskCreatedResultMsg{task: created, err: err}
	}
}

func (m *Model) updateTask(id string, patch state.TaskPatch) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := facade.UpdateTask(ctx, id, patch)
		return taskUpdatedResultMsg{id: id, patch: patch, err: err}
	}
}

// moveTask is a status-only update; a kanban column move compiles to this.
func (m *Model) moveTask(id string, status model.TaskStatus) tea.Cmd {
	return m.updateTask(id, state.TaskPatch{Status: &status})
}

func (m *Model) deleteTask(id string) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := facade.DeleteTask(ctx, id)
		return taskDeletedResultMsg{id: id, err: err}
	}
}

func (m *Model) createTeam(t model.Team) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := facade.CreateTeam(ctx, t)
		return teamCreatedResultMsg{team: created, err: err}
	}
}

func (m *Model) updateTeam(id string, patch state.TeamPatch) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := facade.UpdateTeam(ctx, id, patch)
		return teamUpdatedResultMsg{id: id, patch: patch, err: err}
	}
}

func (m *Model) deleteTeam(id string) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := facade.DeleteTeam(ctx, id)
		return teamDeletedResultMsg{id: id, err: err}
	}
}

func (m *Model) createUser(u model.User) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		created, err := facade.CreateUser(ctx, u)
		return userCreatedResultMsg{user: created, err: err}
	}
}

func (m *Model) updateUser(id string, patch state.UserPatch) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		_, err := facade.UpdateUser(ctx, id, patch)
		return userUpdatedResultMsg{id: id, patch: patch, err: err}
	}
}

func (m *Model) deleteUser(id string) tea.Cmd {
	facade := m.facade
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		err := facade.DeleteUser(ctx, id)
		return userDeletedResultMsg{id: id, err: err}
	}
}

// Patch builders for form submissions. The forms carry every field, so an
// edit compiles to a patch with all fields set.

func projectPatchOf(p model.Project) state.ProjectPatch {
	return state.ProjectPatch{
		Name:        &p.Name,
		Description: &p.Description,
		Status:      &p.Status,
		Priority:    &p.Priority,
		StartDate:   &p.StartDate,
		DueDate:     &p.DueDate,
		Progress:    &p.Progress,
		TeamID:      &p.TeamID,
		OwnerID:     &p.OwnerID,
		FolderID:    &p.FolderID,
	}
}

func taskPatchOf(t model.Task) state.TaskPatch {
	return state.TaskPatch{
		Title:          &t.Title,
		Description:    &t.Description,
		Status:         &t.Status,
		Priority:       &t.Priority,
		ProjectID:      &t.ProjectID,
		AssigneeID:     &t.AssigneeID,
		ReporterID:     &t.ReporterID,
		DueDate:        &t.DueDate,
		EstimatedHours: &t.EstimatedHours,
		ActualHours:    &t.ActualHours,
		Tags:           &t.Tags,
	}
}

func teamPatchOf(t model.Team) state.TeamPatch {
	return state.TeamPatch{
		Name:        &t.Name,
		Description: &t.Description,
		Color:       &t.Color,
		LeaderID:    &t.LeaderID,
	}
}

func userPatchOf(u model.User) state.UserPatch {
	return state.UserPatch{
		Name:       &u.Name,
		Email:      &u.Email,
		Avatar:     &u.Avatar,
		Role:       &u.Role,
		TeamID:     &u.TeamID,
		Department: &u.Department,
		IsActive:   &u.IsActive,
	}
}
