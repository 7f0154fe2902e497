package apiserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/projectflow/internal/apiserver"
	"github.com/nhle/projectflow/tests/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, token string) *httptest.Server {
	t.Helper()
	store := testutil.NewTestStore(t)
	srv := httptest.NewServer(apiserver.NewServer(store, token).Router())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]interface{}
	if resp.StatusCode != http.StatusNoContent {
		json.NewDecoder(resp.Body).Decode(&decoded)
	}
	return resp, decoded
}

func TestServerCRUDRoundTrip(t *testing.T) {
	srv := newTestServer(t, "")

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projectflow/project",
		map[string]interface{}{"name": "Website", "status": "active"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["_id"].(string)
	require.NotEmpty(t, id)

	resp, got := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projectflow/project/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Website", got["name"])

	resp, updated := doJSON(t, http.MethodPut, srv.URL+"/api/v1/projectflow/project/"+id,
		map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", updated["status"])
	assert.Equal(t, "Website", updated["name"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/api/v1/projectflow/project/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/api/v1/projectflow/project/"+id, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServerListCollection(t *testing.T) {
	srv := newTestServer(t, "")

	for _, title := range []string{"One", "Two"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/v1/projectflow/task",
			map[string]interface{}{"title": title})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, err := http.Get(srv.URL + "/api/v1/projectflow/task")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var docs []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "One", docs[0]["title"])
}

func TestServerUnknownCollection(t *testing.T) {
	srv := newTestServer(t, "")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projectflow/widget", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body["error"], "unknown collection")
}

func TestServerRequiresToken(t *testing.T) {
	srv := newTestServer(t, "secret")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/v1/projectflow/project", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/projectflow/project", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer secret")

	authed, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authed.Body.Close()
	assert.Equal(t, http.StatusOK, authed.StatusCode)
}

func TestServerRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, "")

	resp, err := http.Post(srv.URL+"/api/v1/projectflow/project", "application/json",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
