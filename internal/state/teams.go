package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/nhle/projectflow/internal/model"
)

// invitationTTL is how long a new invitation stays valid.
const invitationTTL = 30 * 24 * time.Hour

// TeamPatch is a partial update to a team.
type TeamPatch struct {
	Name        *string
	Description *string
	Color       *string
	LeaderID    *string
}

// UserPatch is a partial update to a user.
type UserPatch struct {
	Name       *string
	Email      *string
	Avatar     *string
	Role       *model.Role
	TeamID     *string
	Department *string
	IsActive   *bool
}

// InvitationPatch is a partial update to an invitation.
type InvitationPatch struct {
	Status  *model.InvitationStatus
	Role    *model.Role
	TeamID  *string
	Message *string
}

// TeamStore owns the team, user, and invitation collections. Team
// membership has a single authoritative direction: User.TeamID. Member
// lists are always derived (views.Resolver, MembersOf), so the two
// representations cannot diverge.
type TeamStore struct {
	Teams       *Collection[model.Team]
	Users       *Collection[model.User]
	Invitations *Collection[model.Invitation]
}

// NewTeamStore creates an empty team store.
func NewTeamStore() *TeamStore {
	return &TeamStore{
		Teams:       NewCollection[model.Team](),
		Users:       NewCollection[model.User](),
		Invitations: NewCollection[model.Invitation](),
	}
}

// AddTeam assigns a fresh ID and creation timestamp and appends the team.
func (s *TeamStore) AddTeam(t model.Team) model.Team {
	t.ID = uuid.New().String()
	t.CreatedAt = now()
	s.Teams.Append(t)
	return t
}

// UpdateTeam merges the patch over the team with the given ID.
func (s *TeamStore) UpdateTeam(id string, patch TeamPatch) bool {
	return s.Teams.Mutate(id, func(t *model.Team) {
		if patch.Name != nil {
			t.Name = *patch.Name
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Color != nil {
			t.Color = *patch.Color
		}
		if patch.LeaderID != nil {
			t.LeaderID = *patch.LeaderID
		}
	})
}

// RemoveTeam deletes a team. Users keep their TeamID; lookups degrade to
// the "Unknown Team" placeholder.
func (s *TeamStore) RemoveTeam(id string) bool {
	return s.Teams.Remove(id)
}

// AddUser assigns a fresh ID and join timestamp and appends the user.
func (s *TeamStore) AddUser(u model.User) model.User {
	u.ID = uuid.New().String()
	u.JoinedAt = now()
	s.Users.Append(u)
	return u
}

// UpdateUser merges the patch over the user with the given ID.
func (s *TeamStore) UpdateUser(id string, patch UserPatch) bool {
	return s.Users.Mutate(id, func(u *model.User) {
		applyUserPatch(u, patch)
	})
}

// RemoveUser deletes a user.
func (s *TeamStore) RemoveUser(id string) bool {
	return s.Users.Remove(id)
}

// MembersOf returns the users whose TeamID is the given team, in insertion
// order.
func (s *TeamStore) MembersOf(teamID string) []model.User {
	var members []model.User
	for _, u := range s.Users.Items() {
		if u.TeamID == teamID {
			members = append(members, u)
		}
	}
	return members
}

// AssignUserToTeam points a user at a team.
func (s *TeamStore) AssignUserToTeam(userID, teamID string) bool {
	return s.Users.Mutate(userID, func(u *model.User) {
		u.TeamID = teamID
	})
}

// SendInvitation stamps the invitation with a fresh ID, the invite time,
// and a 30-day expiry, then appends it.
func (s *TeamStore) SendInvitation(inv model.Invitation) model.Invitation {
	ts := now()
	inv.ID = uuid.New().String()
	inv.InvitedAt = ts
	inv.ExpiresAt = ts.Add(invitationTTL)
	s.Invitations.Append(inv)
	return inv
}

// UpdateInvitation merges the patch over the invitation with the given ID.
func (s *TeamStore) UpdateInvitation(id string, patch InvitationPatch) bool {
	return s.Invitations.Mutate(id, func(inv *model.Invitation) {
		if patch.Status != nil {
			inv.Status = *patch.Status
		}
		if patch.Role != nil {
			inv.Role = *patch.Role
		}
		if patch.TeamID != nil {
			inv.TeamID = *patch.TeamID
		}
		if patch.Message != nil {
			inv.Message = *patch.Message
		}
	})
}

// RemoveInvitation deletes an invitation.
func (s *TeamStore) RemoveInvitation(id string) bool {
	return s.Invitations.Remove(id)
}

// AcceptInvitation marks the invitation accepted and creates a user from
// it, carrying over the invitation's role and team. The new user lands on
// the waiting list when the invitation has no team.
func (s *TeamStore) AcceptInvitation(invitationID string, user model.User) (model.User, bool) {
	inv, ok := s.Invitations.Get(invitationID)
	if !ok {
		return model.User{}, false
	}

	s.Invitations.Mutate(invitationID, func(i *model.Invitation) {
		i.Status = model.InvitationAccepted
	})

	user.Role = inv.Role
	user.TeamID = inv.TeamID
	return s.AddUser(user), true
}

// AssignInvitationToTeam moves an accepted invitation off the waiting list
// and, when its invitee already exists as a user, points that user at the
// team as well.
func (s *TeamStore) AssignInvitationToTeam(invitationID, teamID string) bool {
	inv, ok := s.Invitations.Get(invitationID)
	if !ok {
		return false
	}

	s.Invitations.Mutate(invitationID, func(i *model.Invitation) {
		i.TeamID = teamID
	})

	for _, u := range s.Users.Items() {
		if u.Email == inv.Email {
			s.AssignUserToTeam(u.ID, teamID)
			break
		}
	}
	return true
}

// applyUserPatch copies the patch's non-nil fields onto u.
func applyUserPatch(u *model.User, patch UserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Avatar != nil {
		u.Avatar = *patch.Avatar
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.TeamID != nil {
		u.TeamID = *patch.TeamID
	}
	if patch.Department != nil {
		u.Department = *patch.Department
	}
	if patch.IsActive != nil {
		u.IsActive = *patch.IsActive
	}
}
