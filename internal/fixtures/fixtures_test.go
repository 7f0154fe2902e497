package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/fixtures"
	"github.com/nhle/projectflow/internal/state"
)

func TestSeedPopulatesSessionLocalCollections(t *testing.T) {
	st := state.New()
	fixtures.Seed(st)

	assert.Equal(t, 2, st.Projects.Folders.Len())
	assert.Equal(t, 3, st.Teams.Invitations.Len())
	assert.Equal(t, 6, st.Calendar.Events.Len())

	// Server-backed collections stay empty until the first fetch.
	assert.Zero(t, st.Projects.Len())
	assert.Zero(t, st.Tasks.Len())
	assert.Zero(t, st.Teams.Users.Len())

	for _, inv := range st.Teams.Invitations.Items() {
		require.NotEmpty(t, inv.ID)
		assert.False(t, inv.ExpiresAt.IsZero())
	}
	for _, ev := range st.Calendar.Events.Items() {
		require.NotEmpty(t, ev.ID)
		assert.False(t, ev.Date.IsZero())
	}
}
