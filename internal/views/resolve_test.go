package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
	"github.com/nhle/projectflow/internal/views"
)

func TestResolverPlaceholdersForDanglingReferences(t *testing.T) {
	st := state.New()
	r := views.Resolver{State: st}

	assert.Equal(t, views.UnknownUser, r.UserName("nope"))
	assert.Equal(t, views.UnknownTeam, r.TeamName("nope"))
	assert.Equal(t, views.UnknownProject, r.ProjectName("nope"))
	assert.Empty(t, r.UserAvatar("nope"))
	assert.Empty(t, r.TeamColor("nope"))
}

func TestResolverLookups(t *testing.T) {
	st := state.New()
	team := st.Teams.AddTeam(model.Team{Name: "Design", Color: "#FF0000"})
	user := st.Teams.AddUser(model.User{Name: "Alice", TeamID: team.ID})
	st.Teams.AddUser(model.User{Name: "Bob", TeamID: team.ID})
	project := st.Projects.Add(model.Project{Name: "Website"})

	r := views.Resolver{State: st}

	assert.Equal(t, "Alice", r.UserName(user.ID))
	assert.Equal(t, "Design", r.TeamName(team.ID))
	assert.Equal(t, "#FF0000", r.TeamColor(team.ID))
	assert.Equal(t, "Website", r.ProjectName(project.ID))
	assert.Equal(t, 2, r.MemberCount(team.ID))
	assert.Zero(t, r.MemberCount("empty"))
}

func TestResolverProjectsInFolder(t *testing.T) {
	st := state.New()
	folder := st.Projects.AddFolder("Active Projects", "#3B82F6")
	p1 := st.Projects.Add(model.Project{Name: "Website", FolderID: folder.ID})
	st.Projects.Add(model.Project{Name: "Loose"})
	p2 := st.Projects.Add(model.Project{Name: "App", FolderID: folder.ID})

	r := views.Resolver{State: st}
	got := r.ProjectsInFolder(folder.ID)

	require.Len(t, got, 2)
	assert.Equal(t, p1.ID, got[0].ID)
	assert.Equal(t, p2.ID, got[1].ID)
}

func TestResolverWaitingList(t *testing.T) {
	st := state.New()
	team := st.Teams.AddTeam(model.Team{Name: "Design"})

	st.Teams.SendInvitation(model.Invitation{
		Email:  "pending@example.com",
		Status: model.InvitationPending,
	})
	waiting := st.Teams.SendInvitation(model.Invitation{
		Email:  "waiting@example.com",
		Status: model.InvitationAccepted,
	})
	st.Teams.SendInvitation(model.Invitation{
		Email:  "placed@example.com",
		Status: model.InvitationAccepted,
		TeamID: team.ID,
	})

	r := views.Resolver{State: st}
	got := r.WaitingList()

	require.Len(t, got, 1)
	assert.Equal(t, waiting.ID, got[0].ID)
}
