package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sharukh-vs/skills-getting-started-with-github-copilot/internal/directory"
)

func chessClub() map[string]directory.Activity {
	return map[string]directory.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
	}
}

func setupTestRouter(t *testing.T, opts directory.Options) (*gin.Engine, *directory.Directory) {
	gin.SetMode(gin.TestMode)
	dir := directory.New(chessClub(), opts)
	h := NewHandler(dir, zaptest.NewLogger(t))
	return NewRouter(h, "*"), dir
}

func do(r http.Handler, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupPath(name, email string) string {
	return "/activities/" + url.PathEscape(name) + "/signup?email=" + url.QueryEscape(email)
}

func removePath(name, email string) string {
	return "/activities/" + url.PathEscape(name) + "/participants?email=" + url.QueryEscape(email)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func listActivities(t *testing.T, r http.Handler) map[string]directory.Activity {
	t.Helper()
	w := do(r, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var data map[string]directory.Activity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &data))
	return data
}

func TestGetActivities(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	require.Contains(t, raw, "Chess Club")

	chess := raw["Chess Club"]
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess["description"])
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess["schedule"])
	assert.Equal(t, float64(12), chess["max_participants"])
	assert.IsType(t, []any{}, chess["participants"])
	assert.NotContains(t, chess, "name")
}

func TestSignupAndDuplicate(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodPost, signupPath("Chess Club", "newstudent@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Signed up newstudent@mergington.edu for Chess Club", decodeBody(t, w)["message"])

	participants := listActivities(t, r)["Chess Club"].Participants
	assert.Contains(t, participants, "newstudent@mergington.edu")

	w = do(r, http.MethodPost, signupPath("Chess Club", "newstudent@mergington.edu"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Student is already signed up for this activity", decodeBody(t, w)["detail"])
}

func TestSignupUnknownActivity(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodPost, signupPath("Nope", "someone@x.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", decodeBody(t, w)["detail"])
}

func TestRemoveParticipantAndErrors(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodDelete, removePath("Chess Club", "michael@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Removed michael@mergington.edu from Chess Club", decodeBody(t, w)["message"])

	w = do(r, http.MethodDelete, removePath("Chess Club", "michael@mergington.edu"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student is not signed up for this activity", decodeBody(t, w)["detail"])

	w = do(r, http.MethodDelete, removePath("Nope", "someone@x.com"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", decodeBody(t, w)["detail"])

	assert.Equal(t, []string{"daniel@mergington.edu"}, listActivities(t, r)["Chess Club"].Participants)
}

func TestMissingEmail(t *testing.T) {
	r, dir := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodPost, "/activities/Chess%20Club/signup")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodDelete, "/activities/Chess%20Club/participants")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	a, err := dir.Get("Chess Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 2)
}

func TestSignupCapacityEnforced(t *testing.T) {
	r, dir := setupTestRouter(t, directory.Options{EnforceCapacity: true})

	for i := 0; i < 10; i++ {
		w := do(r, http.MethodPost, signupPath("Chess Club", strings.Repeat("x", i+1)+"@mergington.edu"))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(r, http.MethodPost, signupPath("Chess Club", "thirteenth@mergington.edu"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Activity is full", decodeBody(t, w)["detail"])

	a, _ := dir.Get("Chess Club")
	assert.Len(t, a.Participants, 12)
}

func TestHandlersAreIsolated(t *testing.T) {
	r1, _ := setupTestRouter(t, directory.Options{})
	r2, _ := setupTestRouter(t, directory.Options{})

	w := do(r1, http.MethodPost, signupPath("Chess Club", "only-in-one@mergington.edu"))
	require.Equal(t, http.StatusOK, w.Code)

	assert.NotContains(t, listActivities(t, r2)["Chess Club"].Participants, "only-in-one@mergington.edu")
}

func TestRequestIDAndCORS(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/activities")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = do(r, http.MethodOptions, "/activities")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHealthzMetricsAndNoRoute(t *testing.T) {
	r, _ := setupTestRouter(t, directory.Options{})

	w := do(r, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])

	do(r, http.MethodPost, signupPath("Chess Club", "metrics@mergington.edu"))
	w = do(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "activities_roster_operations_total")
	assert.Contains(t, w.Body.String(), "activities_http_requests_total")

	w = do(r, http.MethodGet, "/nowhere")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
