package state_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

func TestCollectionAppendAndGet(t *testing.T) {
	c := state.NewCollection[model.Team]()
	c.Append(model.Team{ID: "t1", Name: "Design"})
	c.Append(model.Team{ID: "t2", Name: "Engineering"})

	require.Equal(t, 2, c.Len())

	got, ok := c.Get("t2")
	require.True(t, ok)
	assert.Equal(t, "Engineering", got.Name)

	_, ok = c.Get("t3")
	assert.False(t, ok)
}

func TestCollectionItemsReturnsCopy(t *testing.T) {
	c := state.NewCollection(model.Team{ID: "t1", Name: "Design"})

	items := c.Items()
	items[0].Name = "mutated"

	got, ok := c.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "Design", got.Name)
}

func TestCollectionMutateReportsMiss(t *testing.T) {
	c := state.NewCollection(model.Team{ID: "t1", Name: "Design"})

	ok := c.Mutate("t1", func(tm *model.Team) { tm.Name = "Design System" })
	require.True(t, ok)

	got, _ := c.Get("t1")
	assert.Equal(t, "Design System", got.Name)

	assert.False(t, c.Mutate("missing", func(tm *model.Team) { tm.Name = "x" }))
	assert.Equal(t, 1, c.Len())
}

func TestCollectionRemoveReportsMiss(t *testing.T) {
	c := state.NewCollection(
		model.Team{ID: "t1"},
		model.Team{ID: "t2"},
	)

	require.True(t, c.Remove("t1"))
	assert.Equal(t, 1, c.Len())
	assert.False(t, c.Remove("t1"))
}

func TestCollectionCompleteFetchReplacesItems(t *testing.T) {
	c := state.NewCollection(model.Team{ID: "stale"})

	gen := c.BeginFetch()
	assert.True(t, c.Loading())

	applied := c.CompleteFetch(gen, []model.Team{{ID: "t1"}, {ID: "t2"}}, nil)
	require.True(t, applied)
	assert.False(t, c.Loading())
	assert.Empty(t, c.Err())
	assert.Equal(t, 2, c.Len())

	_, ok := c.Get("stale")
	assert.False(t, ok)
}

func TestCollectionStaleFetchDiscarded(t *testing.T) {
	c := state.NewCollection[model.Team]()

	old := c.BeginFetch()
	current := c.BeginFetch()

	require.True(t, c.CompleteFetch(current, []model.Team{{ID: "fresh"}}, nil))

	// The older fetch finished late; its results must not clobber the
	// newer ones.
	applied := c.CompleteFetch(old, []model.Team{{ID: "outdated"}}, nil)
	assert.False(t, applied)

	_, ok := c.Get("fresh")
	assert.True(t, ok)
	_, ok = c.Get("outdated")
	assert.False(t, ok)
}

func TestCollectionFetchErrorKeepsLastKnownGood(t *testing.T) {
	c := state.NewCollection(model.Team{ID: "t1", Name: "Design"})

	gen := c.BeginFetch()
	applied := c.CompleteFetch(gen, nil, errors.New("connection refused"))
	require.True(t, applied)

	assert.False(t, c.Loading())
	assert.Equal(t, "connection refused", c.Err())
	assert.Equal(t, 1, c.Len())

	// A later successful fetch clears the error.
	gen = c.BeginFetch()
	c.CompleteFetch(gen, []model.Team{{ID: "t1"}, {ID: "t2"}}, nil)
	assert.Empty(t, c.Err())
	assert.Equal(t, 2, c.Len())
}

func TestCollectionSetError(t *testing.T) {
	c := state.NewCollection[model.Team]()

	c.SetError("update failed")
	assert.Equal(t, "update failed", c.Err())

	c.SetError("")
	assert.Empty(t, c.Err())
}
