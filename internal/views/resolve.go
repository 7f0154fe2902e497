package views

import (
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

// Placeholder labels for dangling foreign keys. Deletes do not cascade, so
// references may outlive their referent; lookups degrade to these instead
// of failing.
const (
	UnknownUser    = "Unknown User"
	UnknownTeam    = "Unknown Team"
	UnknownProject = "Unknown Project"
)

// Resolver answers cross-entity lookups against the full application
// state. All methods are read-only.
type Resolver struct {
	State *state.AppState
}

// UserName returns the referenced user's display name, or UnknownUser.
func (r Resolver) UserName(id string) string {
	if u, ok := r.State.Teams.Users.Get(id); ok {
		return u.Name
	}
	return UnknownUser
}

// UserAvatar returns the referenced user's avatar URL, or "".
func (r Resolver) UserAvatar(id string) string {
	if u, ok := r.State.Teams.Users.Get(id); ok {
		return u.Avatar
	}
	return ""
}

// TeamName returns the referenced team's name, or UnknownTeam.
func (r Resolver) TeamName(id string) string {
	if t, ok := r.State.Teams.Teams.Get(id); ok {
		return t.Name
	}
	return UnknownTeam
}

// TeamColor returns the referenced team's color, or "".
func (r Resolver) TeamColor(id string) string {
	if t, ok := r.State.Teams.Teams.Get(id); ok {
		return t.Color
	}
	return ""
}

// ProjectName returns the referenced project's name, or UnknownProject.
func (r Resolver) ProjectName(id string) string {
	if p, ok := r.State.Projects.Get(id); ok {
		return p.Name
	}
	return UnknownProject
}

// MemberCount returns the number of users on the given team. Membership is
// derived from User.TeamID.
func (r Resolver) MemberCount(teamID string) int {
	return len(r.State.Teams.MembersOf(teamID))
}

// ProjectsInFolder returns the projects whose FolderID is the given
// folder, in insertion order. Folder membership is derived from
// Project.FolderID.
func (r Resolver) ProjectsInFolder(folderID string) []model.Project {
	var out []model.Project
	for _, p := range r.State.Projects.Items() {
		if p.FolderID == folderID {
			out = append(out, p)
		}
	}
	return out
}

// WaitingList returns the accepted invitations that have not been assigned
// a team yet.
func (r Resolver) WaitingList() []model.Invitation {
	var out []model.Invitation
	for _, inv := range r.State.Teams.Invitations.Items() {
		if inv.Status == model.InvitationAccepted && inv.TeamID == "" {
			out = append(out, inv)
		}
	}
	return out
}
