package apiserver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/tests/testutil"
)

func TestStoreCreateAssignsIdentity(t *testing.T) {
	s := testutil.NewTestStore(t)

	doc, err := s.Create("project", map[string]interface{}{"name": "Website"})
	require.NoError(t, err)

	assert.NotEmpty(t, doc["_id"])
	assert.NotEmpty(t, doc["createdAt"])
	assert.Equal(t, doc["createdAt"], doc["updatedAt"])
	assert.Equal(t, "Website", doc["name"])
}

func TestStoreGetAndListByCollection(t *testing.T) {
	s := testutil.NewTestStore(t)

	first, err := s.Create("task", map[string]interface{}{"title": "One"})
	require.NoError(t, err)
	_, err = s.Create("task", map[string]interface{}{"title": "Two"})
	require.NoError(t, err)
	_, err = s.Create("project", map[string]interface{}{"name": "Other"})
	require.NoError(t, err)

	docs, err := s.List("task")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "One", docs[0]["title"])
	assert.Equal(t, "Two", docs[1]["title"])

	got, found, err := s.Get("task", first["_id"].(string))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "One", got["title"])

	_, found, err = s.Get("task", "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreUpdateMergesPatch(t *testing.T) {
	s := testutil.NewTestStore(t)

	doc, err := s.Create("project", map[string]interface{}{
		"name":     "Website",
		"status":   "active",
		"progress": float64(10),
	})
	require.NoError(t, err)
	id := doc["_id"].(string)

	updated, found, err := s.Update("project", id, map[string]interface{}{
		"progress": float64(60),
		// An attempt to rewrite identity keys is ignored.
		"_id":       "forged",
		"createdAt": "1999-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, id, updated["_id"])
	assert.Equal(t, doc["createdAt"], updated["createdAt"])
	assert.Equal(t, float64(60), updated["progress"])
	assert.Equal(t, "active", updated["status"])

	_, found, err = s.Update("project", "missing", map[string]interface{}{"x": 1})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreDelete(t *testing.T) {
	s := testutil.NewTestStore(t)

	doc, err := s.Create("member", map[string]interface{}{"name": "Alice"})
	require.NoError(t, err)
	id := doc["_id"].(string)

	found, err := s.Delete("member", id)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = s.Delete("member", id)
	require.NoError(t, err)
	assert.False(t, found)

	docs, err := s.List("member")
	require.NoError(t, err)
	assert.Empty(t, docs)
}
