package api

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

// Facade translates between the wire representation and the local entity
// shape for the four server-backed collections. Fetches replace rather
// than merge, so repeating one is idempotent.
type Facade struct {
	client *Client
}

// NewFacade creates a façade over the given client.
func NewFacade(client *Client) *Facade {
	return &Facade{client: client}
}

// FetchProjects retrieves the full project collection.
func (f *Facade) FetchProjects(ctx context.Context) ([]model.Project, error) {
	var records []ProjectRecord
	if err := f.client.Get(ctx, "/project", &records); err != nil {
		return nil, fmt.Errorf("fetching projects: %w", err)
	}

	projects := make([]model.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, projectFromWire(rec))
	}
	return projects, nil
}

// CreateProject creates a project on the server and returns the confirmed
// record with its server-assigned ID.
func (f *Facade) CreateProject(ctx context.Context, p model.Project) (model.Project, error) {
	var created ProjectRecord
	if err := f.client.Post(ctx, "/project", projectToWire(p), &created); err != nil {
		return model.Project{}, fmt.Errorf("creating project: %w", err)
	}
	return projectFromWire(created), nil
}

// UpdateProject applies a partial update on the server and returns the
// updated record.
func (f *Facade) UpdateProject(ctx context.Context, id string, patch state.ProjectPatch) (model.Project, error) {
	var updated ProjectRecord
	if err := f.client.Put(ctx, "/project/"+id, projectPatchToWire(patch), &updated); err != nil {
		return model.Project{}, fmt.Errorf("updating project %s: %w", id, err)
	}
	return projectFromWire(updated), nil
}

// DeleteProject removes a project on the server.
func (f *Facade) DeleteProject(ctx context.Context, id string) error {
	if err := f.client.Delete(ctx, "/project/"+id); err != nil {
		return fmt.Errorf("deleting project %s: %w", id, err)
	}
	return nil
}

// FetchTasks retrieves the full task collection.
func (f *Facade) FetchTasks(ctx context.Context) ([]model.Task, error) {
	var records []TaskRecord
	if err := f.client.Get(ctx, "/task", &records); err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(records))
	for _, rec := range records {
		tasks = append(tasks, taskFromWire(rec))
	}
	return tasks, nil
}

// CreateTask creates a task on the server and returns the confirmed
// record.
func (f *Facade) CreateTask(ctx context.Context, t model.Task) (model.Task, error) {
	var created TaskRecord
	if err := f.client.Post(ctx, "/task", taskToWire(t), &created); err != nil {
		return model.Task{}, fmt.Errorf("creating task: %w", err)
	}
	return taskFromWire(created), nil
}

// UpdateTask applies a partial update on the server and returns the
// updated record.
func (f *Facade) UpdateTask(ctx context.Context, id string, patch state.TaskPatch) (model.Task, error) {
	var updated TaskRecord
	if err := f.client.Put(ctx, "/task/"+id, taskPatchToWire(patch), &updated); err != nil {
		return model.Task{}, fmt.Errorf("updating task %s: %w", id, err)
	}
	return taskFromWire(updated), nil
}

// DeleteTask removes a task on the server.
func (f *Facade) DeleteTask(ctx context.Context, id string) error {
	if err := f.client.Delete(ctx, "/task/"+id); err != nil {
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

// FetchTeams retrieves the full team collection.
func (f *Facade) FetchTeams(ctx context.Context) ([]model.Team, error) {
	var records []TeamRecord
	if err := f.client.Get(ctx, "/team", &records); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	teams := make([]model.Team, 0, len(records))
	for _, rec := range records {
		teams = append(teams, teamFromWire(rec))
	}
	return teams, nil
}

// CreateTeam creates a team on the server and returns the confirmed
// record.
func (f *Facade) CreateTeam(ctx context.Context, t model.Team) (model.Team, error) {
	var created TeamRecord
	if err := f.client.Post(ctx, "/team", teamToWire(t), &created); err != nil {
		return model.Team{}, fmt.Errorf("creating team: %w", err)
	}
	return teamFromWire(created), nil
}

// UpdateTeam applies a partial update on the server and returns the
// updated record.
func (f *Facade) UpdateTeam(ctx context.Context, id string, patch state.TeamPatch) (model.Team, error) {
	var updated TeamRecord
	if err := f.client.Put(ctx, "/team/"+id, teamPatchToWire(patch), &updated); err != nil {
		return model.Team{}, fmt.Errorf("updating team %s: %w", id, err)
	}
	return teamFromWire(updated), nil
}

// DeleteTeam removes a team on the server.
func (f *Facade) DeleteTeam(ctx context.Context, id string) error {
	if err := f.client.Delete(ctx, "/team/"+id); err != nil {
		return fmt.Errorf("deleting team %s: %w", id, err)
	}
	return nil
}

// FetchUsers retrieves the full member collection.
func (f *Facade) FetchUsers(ctx context.Context) ([]model.User, error) {
	var records []MemberRecord
	if err := f.client.Get(ctx, "/member", &records); err != nil {
		return nil, fmt.Errorf("fetching members: %w", err)
	}

	users := make([]model.User, 0, len(records))
	for _, rec := range records {
		users = append(users, userFromWire(rec))
	}
	return users, nil
}

// CreateUser creates a member on the server and returns the confirmed
// record.
func (f *Facade) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	var created MemberRecord
	if err := f.client.Post(ctx, "/member", userToWire(u), &created); err != nil {
		return model.User{}, fmt.Errorf("creating member: %w", err)
	}
	return userFromWire(created), nil
}

// UpdateUser applies a partial update on the server and returns the
// updated record.
func (f *Facade) UpdateUser(ctx context.Context, id string, patch state.UserPatch) (model.User, error) {
	var updated MemberRecord
	if err := f.client.Put(ctx, "/member/"+id, userPatchToWire(patch), &updated); err != nil {
		return model.User{}, fmt.Errorf("updating member %s: %w", id, err)
	}
	return userFromWire(updated), nil
}

// DeleteUser removes a member on the server.
func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	if err := f.client.Delete(ctx, "/member/"+id); err != nil {
		return fmt.Errorf("deleting member %s: %w", id, err)
	}
	return nil
}

// === wire mapping ===

func projectFromWire(rec ProjectRecord) model.Project {
	return model.Project{
		ID:          rec.RecordID,
		Name:        rec.Name,
		Description: rec.Description,
		Status:      model.ProjectStatus(rec.Status),
		Priority:    model.Priority(rec.Priority),
		StartDate:   parseWireTime(rec.StartDate),
		DueDate:     parseWireTime(rec.DueDate),
		Progress:    rec.Progress,
		TeamID:      rec.TeamID,
		OwnerID:     rec.OwnerID,
		FolderID:    rec.FolderID,
		CreatedAt:   parseWireTime(rec.CreatedAt),
		UpdatedAt:   parseWireTime(rec.UpdatedAt),
	}
}

func projectToWire(p model.Project) ProjectRecord {
	return ProjectRecord{
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		Priority:    string(p.Priority),
		StartDate:   formatWireTime(p.StartDate),
		DueDate:     formatWireTime(p.DueDate),
		Progress:    p.Progress,
		TeamID:      p.TeamID,
		OwnerID:     p.OwnerID,
		FolderID:    p.FolderID,
	}
}

func projectPatchToWire(patch state.ProjectPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Status != nil {
		body["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		body["priority"] = string(*patch.Priority)
	}
	if patch.StartDate != nil {
		body["startDate"] = formatWireTime(*patch.StartDate)
	}
	if patch.DueDate != nil {
		body["dueDate"] = formatWireTime(*patch.DueDate)
	}
	if patch.Progress != nil {
		body["progress"] = *patch.Progress
	}
	if patch.TeamID != nil {
		body["teamId"] = *patch.TeamID
	}
	if patch.OwnerID != nil {
		body["ownerId"] = *patch.OwnerID
	}
	if patch.FolderID != nil {
		body["folderId"] = *patch.FolderID
	}
	return body
}

func taskFromWire(rec TaskRecord) model.Task {
	return model.Task{
		ID:             rec.RecordID,
		Title:          rec.Title,
		Description:    rec.Description,
		Status:         model.TaskStatus(rec.Status),
		Priority:       model.Priority(rec.Priority),
		ProjectID:      rec.ProjectID,
		AssigneeID:     rec.AssigneeID,
		ReporterID:     rec.ReporterID,
		DueDate:        parseWireTime(rec.DueDate),
		EstimatedHours: rec.EstimatedHours,
		ActualHours:    rec.ActualHours,
		Tags:           rec.Tags,
		CreatedAt:      parseWireTime(rec.CreatedAt),
		UpdatedAt:      parseWireTime(rec.UpdatedAt),
	}
}

func taskToWire(t model.Task) TaskRecord {
	return TaskRecord{
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		ProjectID:      t.ProjectID,
		AssigneeID:     t.AssigneeID,
		ReporterID:     t.ReporterID,
		DueDate:        formatWireTime(t.DueDate),
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		Tags:           t.Tags,
	}
}

func taskPatchToWire(patch state.TaskPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if patch.Title != nil {
		body["title"] = *patch.Title
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Status != nil {
		body["status"] = string(*patch.Status)
	}
	if patch.Priority != nil {
		body["priority"] = string(*patch.Priority)
	}
	if patch.ProjectID != nil {
		body["projectId"] = *patch.ProjectID
	}
	if patch.AssigneeID != nil {
		body["assigneeId"] = *patch.AssigneeID
	}
	if patch.ReporterID != nil {
		body["reporterId"] = *patch.ReporterID
	}
	if patch.DueDate != nil {
		body["dueDate"] = formatWireTime(*patch.DueDate)
	}
	if patch.EstimatedHours != nil {
		body["estimatedHours"] = *patch.EstimatedHours
	}
	if patch.ActualHours != nil {
		body["actualHours"] = *patch.ActualHours
	}
	if patch.Tags != nil {
		body["tags"] = *patch.Tags
	}
	return body
}

func teamFromWire(rec TeamRecord) model.Team {
	return model.Team{
		ID:          rec.RecordID,
		Name:        rec.Name,
		Description: rec.Description,
		Color:       rec.Color,
		LeaderID:    rec.LeaderID,
		CreatedAt:   parseWireTime(rec.CreatedAt),
	}
}

func teamToWire(t model.Team) TeamRecord {
	return TeamRecord{
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		LeaderID:    t.LeaderID,
	}
}

func teamPatchToWire(patch state.TeamPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Description != nil {
		body["description"] = *patch.Description
	}
	if patch.Color != nil {
		body["color"] = *patch.Color
	}
	if patch.LeaderID != nil {
		body["leaderId"] = *patch.LeaderID
	}
	return body
}

func userFromWire(rec MemberRecord) model.User {
	return model.User{
		ID:         rec.RecordID,
		Name:       rec.Name,
		Email:      rec.Email,
		Avatar:     rec.Avatar,
		Role:       model.Role(rec.Role),
		TeamID:     rec.TeamID,
		Department: rec.Department,
		IsActive:   rec.IsActive,
		JoinedAt:   parseWireTime(rec.JoinedAt),
	}
}

func userToWire(u model.User) MemberRecord {
	return MemberRecord{
		Name:       u.Name,
		Email:      u.Email,
		Avatar:     u.Avatar,
		Role:       string(u.Role),
		TeamID:     u.TeamID,
		Department: u.Department,
		IsActive:   u.IsActive,
	}
}

func userPatchToWire(patch state.UserPatch) map[string]interface{} {
	body := map[string]interface{}{}
	if patch.Name != nil {
		body["name"] = *patch.Name
	}
	if patch.Email != nil {
		body["email"] = *patch.Email
	}
	if patch.Avatar != nil {
		body["avatar"] = *patch.Avatar
	}
	if patch.Role != nil {
		body["role"] = string(*patch.Role)
	}
	if patch.TeamID != nil {
		body["teamId"] = *patch.TeamID
	}
	if patch.Department != nil {
		body["department"] = *patch.Department
	}
	if patch.IsActive != nil {
		body["isActive"] = *patch.IsActive
	}
	return body
}

// parseWireTime parses a server timestamp. The server emits RFC 3339;
// date-valued fields may arrive as bare dates.
func parseWireTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// formatWireTime renders a timestamp for the wire. Zero times become "".
func formatWireTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
