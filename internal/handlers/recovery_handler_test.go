package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_TrackSobriety(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)
	user := createUser(t, app, "")

	status, resp := do(t, app, request{method: http.MethodPost, path: "/addictions", body: map[string]any{"name": "Vaping", "icon": "💨"}})
	require.Equal(t, http.StatusCreated, status, resp)
	addictionID := resp["addiction"].(map[string]any)["id"].(string)

	status, _ = do(t, app, request{method: http.MethodPost, path: "/addictions", body: map[string]any{"name": "Vaping"}})
	assert.Equal(t, http.StatusConflict, status)

	status, resp = do(t, app, request{
		method:  http.MethodPost,
		path:    "/users/" + user + "/addictions",
		body:    map[string]any{"addictionId": addictionID, "startDate": "2026-01-01"},
		headers: asUser(user),
	})
	require.Equal(t, http.StatusCreated, status, resp)
	uaID := resp["user_addiction"].(map[string]any)["id"].(string)

	status, _ = do(t, app, request{
		method:  http.MethodPost,
		path:    "/users/" + user + "/addictions",
		body:    map[string]any{"addictionId": addictionID},
		headers: asUser(user),
	})
	assert.Equal(t, http.StatusConflict, status)

	status, resp = do(t, app, request{method: http.MethodGet, path: "/users/" + user + "/addictions"})
	require.Equal(t, http.StatusOK, status)
	links := resp["user_addictions"].([]any)
	require.Len(t, links, 1)
	assert.Equal(t, "Vaping", links[0].(map[string]any)["addiction"].(map[string]any)["name"])

	status, _ = do(t, app, request{method: http.MethodPost, path: "/user-addictions/" + uaID + "/logs", body: map[string]any{"status": "maybe"}, headers: asUser(user)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: "/user-addictions/" + uaID + "/logs", body: map[string]any{"status": "clean", "date": "2026-01-02"}, headers: asUser(user)})
	assert.Equal(t, http.StatusCreated, status)
	status, _ = do(t, app, request{method: http.MethodPost, path: "/user-addictions/" + uaID + "/logs", body: map[string]any{"status": "slip", "date": "2026-01-03"}, headers: asUser(user)})
	assert.Equal(t, http.StatusCreated, status)

	status, resp = do(t, app, request{method: http.MethodGet, path: "/user-addictions/" + uaID + "/logs", headers: asUser(user)})
	require.Equal(t, http.StatusOK, status)
	logs := resp["logs"].([]any)
	require.Len(t, logs, 2)
	assert.Equal(t, "slip", logs[0].(map[string]any)["status"])

	stranger := createUser(t, app, "")
	status, _ = do(t, app, request{method: http.MethodGet, path: "/user-addictions/" + uaID + "/logs", headers: asUser(stranger)})
	assert.Equal(t, http.StatusForbidden, status)
}

func TestRecovery_JournalLogs(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)
	user := createUser(t, app, "")
	stranger := createUser(t, app, "")

	cravings := "/users/" + user + "/craving-logs"
	moods := "/users/" + user + "/mood-logs"

	status, _ := do(t, app, request{method: http.MethodPost, path: cravings, body: map[string]any{"intensity": 4}})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: cravings, body: map[string]any{"intensity": 12}, headers: asUser(user)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: cravings, body: map[string]any{"intensity": 4}, headers: asUser(stranger)})
	assert.Equal(t, http.StatusForbidden, status)

	status, resp := do(t, app, request{method: http.MethodPost, path: cravings, body: map[string]any{"intensity": 8, "trigger": "payday"}, headers: asUser(user)})
	require.Equal(t, http.StatusCreated, status, resp)
	assert.Equal(t, "payday", resp["log"].(map[string]any)["trigger"])

	status, resp = do(t, app, request{method: http.MethodGet, path: cravings, headers: asUser(user)})
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["logs"].([]any), 1)

	status, _ = do(t, app, request{method: http.MethodGet, path: cravings, headers: asUser(stranger)})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: moods, body: map[string]any{"mood": 9}, headers: asUser(user)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: moods, body: map[string]any{"mood": 2, "note": "tired"}, headers: asUser(user)})
	assert.Equal(t, http.StatusCreated, status)

	status, resp = do(t, app, request{method: http.MethodGet, path: moods, headers: asUser(user)})
	require.Equal(t, http.StatusOK, status)
	logs := resp["logs"].([]any)
	require.Len(t, logs, 1)
	assert.EqualValues(t, 2, logs[0].(map[string]any)["mood"])

	// deleting the account removes the journal
	status, _ = do(t, app, request{method: http.MethodDelete, path: "/users/" + user, headers: asUser(user)})
	require.Equal(t, http.StatusOK, status)
	status, resp = do(t, app, request{method: http.MethodGet, path: moods, headers: asUser(user)})
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, resp["logs"])
}

func TestHealth(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)

	status, resp := do(t, app, request{method: http.MethodGet, path: "/health"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "ok", resp["db"])
	assert.Equal(t, "memory", resp["storage"])
}
