package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/projectflow/internal/model"
)

// ProjectPatch is a partial update to a project. Nil fields are left
// untouched.
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *model.ProjectStatus
	Priority    *model.Priority
	StartDate   *time.Time
	DueDate     *time.Time
	Progress    *int
	TeamID      *string
	OwnerID     *string
	FolderID    *string
}

// FolderPatch is a partial update to a project folder.
type FolderPatch struct {
	Name  *string
	Color *string
}

// ProjectStore owns the project collection and the session-local folder
// collection.
type ProjectStore struct {
	*Collection[model.Project]

	// Folders have no wire format; they live only in local session state.
	Folders *Collection[model.ProjectFolder]
}

// NewProjectStore creates an empty project store.
func NewProjectStore() *ProjectStore {
	return &ProjectStore{
		Collection: NewCollection[model.Project](),
		Folders:    NewCollection[model.ProjectFolder](),
	}
}

// Add assigns a fresh ID and creation timestamps and appends the project.
// Input is taken as-is otherwise; form layers are responsible for enum
// validity.
func (s *ProjectStore) Add(p model.Project) model.Project {
	ts := now()
	p.ID = uuid.New().String()
	p.Progress = clampProgress(p.Progress)
	p.CreatedAt = ts
	p.UpdatedAt = ts
	s.Append(p)
	return p
}

// Update merges the patch over the project with the given ID and refreshes
// UpdatedAt. It reports whether the project was found.
func (s *ProjectStore) Update(id string, patch ProjectPatch) bool {
	return s.Mutate(id, func(p *model.Project) {
		applyProjectPatch(p, patch)
		p.UpdatedAt = now()
	})
}

// applyProjectPatch copies the patch's non-nil fields onto p.
func applyProjectPatch(p *model.Project, patch ProjectPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	if patch.Progress != nil {
		p.Progress = clampProgress(*patch.Progress)
	}
	if patch.TeamID != nil {
		p.TeamID = *patch.TeamID
	}
	if patch.OwnerID != nil {
		p.OwnerID = *patch.OwnerID
	}
	if patch.FolderID != nil {
		p.FolderID = *patch.FolderID
	}
}

// AddFolder creates a session-local folder.
func (s *ProjectStore) AddFolder(name, color string) model.ProjectFolder {
	f := model.ProjectFolder{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
	}
	s.Folders.Append(f)
	return f
}

// UpdateFolder merges the patch over the folder with the given ID.
func (s *ProjectStore) UpdateFolder(id string, patch FolderPatch) bool {
	return s.Folders.Mutate(id, func(f *model.ProjectFolder) {
		if patch.Name != nil {
			f.Name = *patch.Name
		}
		if patch.Color != nil {
			f.Color = *patch.Color
		}
	})
}

// RemoveFolder deletes a folder. Projects referencing it keep their
// FolderID; readers treat a dangling folder reference as "no folder".
func (s *ProjectStore) RemoveFolder(id string) bool {
	return s.Folders.Remove(id)
}

// clampProgress bounds a progress percentage to [0, 100].
func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
