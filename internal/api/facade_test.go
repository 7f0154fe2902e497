package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/api"
	"github.com/nhle/projectflow/internal/model"
	"github.com/nhle/projectflow/internal/state"
)

func newFacade(t *testing.T, handler http.HandlerFunc) *api.Facade {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.NewFacade(api.NewClient(srv.URL, "secret"))
}

func TestFetchProjectsMapsWireRecords(t *testing.T) {
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/project", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{
			"_id": "abc-123",
			"name": "Website Redesign",
			"status": "active",
			"priority": "high",
			"startDate": "2026-01-05",
			"dueDate": "2026-03-31",
			"progress": 40,
			"teamId": "team-1",
			"ownerId": "user-1",
			"createdAt": "2026-01-05T10:00:00Z",
			"updatedAt": "2026-02-01T09:30:00Z"
		}]`)
	})

	projects, err := facade.FetchProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 1)

	p := projects[0]
	// The server's _id becomes the local canonical ID.
	assert.Equal(t, "abc-123", p.ID)
	assert.Equal(t, "Website Redesign", p.Name)
	assert.Equal(t, model.ProjectStatusActive, p.Status)
	assert.Equal(t, model.PriorityHigh, p.Priority)
	assert.Equal(t, 40, p.Progress)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), p.StartDate)
	assert.Equal(t, time.Date(2026, 2, 1, 9, 30, 0, 0, time.UTC), p.UpdatedAt)
}

func TestCreateTaskRoundTrip(t *testing.T) {
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/task", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Wireframes", body["title"])
		// Outbound records never carry a client-made ID.
		assert.NotContains(t, body, "_id")

		body["_id"] = "server-id"
		body["createdAt"] = "2026-02-01T09:30:00Z"
		body["updatedAt"] = "2026-02-01T09:30:00Z"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(body)
	})

	created, err := facade.CreateTask(context.Background(), model.Task{
		Title:    "Wireframes",
		Status:   model.TaskStatusNew,
		Priority: model.PriorityMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "server-id", created.ID)
	assert.Equal(t, "Wireframes", created.Title)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdateProjectSendsOnlySetFields(t *testing.T) {
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/project/abc-123", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		// A partial patch must not zero out unset fields.
		assert.Len(t, body, 2)
		assert.Equal(t, "completed", body["status"])
		assert.Equal(t, float64(100), body["progress"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"_id": "abc-123", "name": "Website Redesign", "status": "completed", "progress": 100}`)
	})

	status := model.ProjectStatusCompleted
	progress := 100
	updated, err := facade.UpdateProject(context.Background(), "abc-123", state.ProjectPatch{
		Status:   &status,
		Progress: &progress,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusCompleted, updated.Status)
	assert.Equal(t, 100, updated.Progress)
}

func TestDeleteTeamAcceptsNoContent(t *testing.T) {
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/team/team-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, facade.DeleteTeam(context.Background(), "team-1"))
}

func TestServerErrorSurfacesMessage(t *testing.T) {
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"error": "not found"}`)
	})

	_, err := facade.UpdateTask(context.Background(), "missing", state.TaskPatch{})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Message)
}

func TestClientRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[]`)
	})

	users, err := facade.FetchUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.Equal(t, 2, attempts)
}

func TestClientFailsFastWhenRetriesExhausted(t *testing.T) {
	attempts := 0
	facade := newFacade(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		// The final rejection advertises a long wait; the client must not
		// honor it once no retries remain.
		if attempts < 4 {
			w.Header().Set("Retry-After", "0")
		} else {
			w.Header().Set("Retry-After", "60")
		}
		w.WriteHeader(http.StatusTooManyRequests)
	})

	start := time.Now()
	_, err := facade.FetchUsers(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries")
	assert.Equal(t, 4, attempts)
	assert.Less(t, time.Since(start), 10*time.Second)
}
