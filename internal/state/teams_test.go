package state_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

func TestMembersOfDerivedFromUserTeamID(t *testing.T) {
	s := state.NewTeamStore()
	team := s.AddTeam(model.Team{Name: "Design"})
	other := s.AddTeam(model.Team{Name: "Engineering"})

	alice := s.AddUser(model.User{Name: "Alice", TeamID: team.ID})
	s.AddUser(model.User{Name: "Bob", TeamID: other.ID})
	s.AddUser(model.User{Name: "Carol", TeamID: team.ID})

	members := s.MembersOf(team.ID)
	require.Len(t, members, 2)
	assert.Equal(t, "Alice", members[0].Name)
	assert.Equal(t, "Carol", members[1].Name)

	// Moving a user is just repointing their TeamID.
	require.True(t, s.AssignUserToTeam(alice.ID, other.ID))
	assert.Len(t, s.MembersOf(team.ID), 1)
	assert.Len(t, s.MembersOf(other.ID), 2)
}

func TestSendInvitationStampsExpiry(t *testing.T) {
	s := state.NewTeamStore()
	inv := s.SendInvitation(model.Invitation{
		Email:  "new@example.com",
		Status: model.InvitationPending,
		Role:   model.RoleMember,
	})

	require.NotEmpty(t, inv.ID)
	assert.False(t, inv.InvitedAt.IsZero())
	assert.Equal(t, inv.InvitedAt.Add(30*24*time.Hour), inv.ExpiresAt)
}

func TestAcceptInvitationCreatesUserFromInvitation(t *testing.T) {
	s := state.NewTeamStore()
	team := s.AddTeam(model.Team{Name: "Design"})

	inv := s.SendInvitation(model.Invitation{
		Email:  "dana@example.com",
		Status: model.InvitationPending,
		Role:   model.RoleManager,
		TeamID: team.ID,
	})

	user, ok := s.AcceptInvitation(inv.ID, model.User{
		Name:     "Dana",
		Email:    "dana@example.com",
		IsActive: true,
	})
	require.True(t, ok)

	// Role and team come from the invitation, not the caller.
	assert.Equal(t, model.RoleManager, user.Role)
	assert.Equal(t, team.ID, user.TeamID)
	assert.NotEmpty(t, user.ID)

	stored, ok := s.Invitations.Get(inv.ID)
	require.True(t, ok)
	assert.Equal(t, model.InvitationAccepted, stored.Status)
}

func TestAcceptInvitationWithoutTeamLandsOnWaitingList(t *testing.T) {
	s := state.NewTeamStore()
	inv := s.SendInvitation(model.Invitation{
		Email:  "eve@example.com",
		Status: model.InvitationPending,
		Role:   model.RoleMember,
	})

	user, ok := s.AcceptInvitation(inv.ID, model.User{Name: "Eve", Email: "eve@example.com"})
	require.True(t, ok)
	assert.Empty(t, user.TeamID)

	stored, _ := s.Invitations.Get(inv.ID)
	assert.Equal(t, model.InvitationAccepted, stored.Status)
	assert.Empty(t, stored.TeamID)
}

func TestAcceptInvitationMiss(t *testing.T) {
	s := state.NewTeamStore()
	_, ok := s.AcceptInvitation("missing", model.User{Name: "Nobody"})
	assert.False(t, ok)
	assert.Equal(t, 0, s.Users.Len())
}

func TestAssignInvitationToTeamRepointsUserByEmail(t *testing.T) {
	s := state.NewTeamStore()
	team := s.AddTeam(model.Team{Name: "Design"})

	inv := s.SendInvitation(model.Invitation{
		Email:  "frank@example.com",
		Status: model.InvitationPending,
		Role:   model.RoleMember,
	})
	user, ok := s.AcceptInvitation(inv.ID, model.User{Name: "Frank", Email: "frank@example.com"})
	require.True(t, ok)
	require.Empty(t, user.TeamID)

	require.True(t, s.AssignInvitationToTeam(inv.ID, team.ID))

	stored, _ := s.Invitations.Get(inv.ID)
	assert.Equal(t, team.ID, stored.TeamID)

	moved, _ := s.Users.Get(user.ID)
	assert.Equal(t, team.ID, moved.TeamID)

	assert.False(t, s.AssignInvitationToTeam("missing", team.ID))
}

func TestUpdateUserPatchesOnlySetFields(t *testing.T) {
	s := state.NewTeamStore()
	user := s.AddUser(model.User{
		Name:       "Grace",
		Email:      "grace@example.com",
		Role:       model.RoleMember,
		Department: "Marketing",
		IsActive:   true,
	})

	role := model.RoleAdmin
	require.True(t, s.UpdateUser(user.ID, state.UserPatch{Role: &role}))

	got, _ := s.Users.Get(user.ID)
	assert.Equal(t, model.RoleAdmin, got.Role)
	assert.Equal(t, "Grace", got.Name)
	assert.Equal(t, "Marketing", got.Department)
	assert.True(t, got.IsActive)
}

func TestRemoveTeamLeavesUsersIntact(t *testing.T) {
	s := state.NewTeamStore()
	team := s.AddTeam(model.Team{Name: "Design"})
	user := s.AddUser(model.User{Name: "Henry", TeamID: team.ID})

	require.True(t, s.RemoveTeam(team.ID))

	// The user keeps a dangling TeamID; display degrades at lookup time.
	got, ok := s.Users.Get(user.ID)
	require.True(t, ok)
	assert.Equal(t, team.ID, got.TeamID)
}
