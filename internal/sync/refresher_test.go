package sync_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/api"
	"github.com/nhle/projectflow/internal/state"
	appsync "github.com/nhle/projectflow/internal/sync"
)

func TestRefresherInitialFetchPopulatesStores(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/project":
			io.WriteString(w, `[{"_id": "p1", "name": "Website", "status": "active"}]`)
		case "/task":
			io.WriteString(w, `[{"_id": "t1", "title": "Wireframes", "status": "new"}, {"_id": "t2", "title": "Copy", "status": "new"}]`)
		case "/team":
			io.WriteString(w, `[{"_id": "tm1", "name": "Design"}]`)
		case "/member":
			io.WriteString(w, `[{"_id": "u1", "name": "Alice", "teamId": "tm1"}]`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	st := state.New()
	facade := api.NewFacade(api.NewClient(srv.URL, ""))
	refresher := appsync.New(st, facade, time.Hour)
	defer refresher.Stop()

	cmd := refresher.Start()
	require.NotNil(t, cmd)

	// The four collections report in fetch order.
	seen := map[appsync.Collection]int{}
	msg := cmd()
	for i := 0; i < 4; i++ {
		result, ok := msg.(appsync.RefreshResultMsg)
		require.True(t, ok)
		require.NoError(t, result.Err)
		seen[result.Collection] = result.Count
		if i < 3 {
			msg = refresher.WaitForNextResult()()
		}
	}

	assert.Equal(t, 1, seen[appsync.CollectionProjects])
	assert.Equal(t, 2, seen[appsync.CollectionTasks])
	assert.Equal(t, 1, seen[appsync.CollectionTeams])
	assert.Equal(t, 1, seen[appsync.CollectionMembers])

	assert.Equal(t, 1, st.Projects.Len())
	assert.Equal(t, 2, st.Tasks.Len())
	assert.Equal(t, 1, st.Teams.Teams.Len())
	assert.Equal(t, 1, st.Teams.Users.Len())

	task, ok := st.Tasks.Get("t1")
	require.True(t, ok)
	assert.Equal(t, "Wireframes", task.Title)
}

func TestRefresherSurfacesFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "database unavailable"}`)
	}))
	defer srv.Close()

	st := state.New()
	facade := api.NewFacade(api.NewClient(srv.URL, ""))
	refresher := appsync.New(st, facade, time.Hour)
	defer refresher.Stop()

	msg := refresher.Start()()
	result, ok := msg.(appsync.RefreshResultMsg)
	require.True(t, ok)
	assert.Error(t, result.Err)

	// The store records the failure but keeps serving.
	assert.NotEmpty(t, st.Projects.Err())
	assert.Equal(t, 0, st.Projects.Len())
}

func TestRefresherStartIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	}))
	defer srv.Close()

	st := state.New()
	facade := api.NewFacade(api.NewClient(srv.URL, ""))
	refresher := appsync.New(st, facade, time.Hour)
	defer refresher.Stop()

	require.NotNil(t, refresher.Start())
	assert.Nil(t, refresher.Start())
}
