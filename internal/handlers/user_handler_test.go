package handlers_test

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_ProfileFlow(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)
	alice := createUser(t, app, "alice")
	createUser(t, app, "bob")

	status, _ := do(t, app, request{method: http.MethodPost, path: "/users", body: map[string]any{"username": "ALICE"}})
	assert.Equal(t, http.StatusConflict, status)

	status, resp := do(t, app, request{method: http.MethodGet, path: "/users/" + alice})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", resp["user"].(map[string]any)["username"])

	status, _ = do(t, app, request{method: http.MethodPatch, path: "/users/" + alice, body: map[string]any{"username": "bob"}, headers: asUser(alice)})
	assert.Equal(t, http.StatusConflict, status)

	status, resp = do(t, app, request{method: http.MethodPatch, path: "/users/" + alice, body: map[string]any{"username": "alice_2", "country": "de"}, headers: asUser(alice)})
	require.Equal(t, http.StatusOK, status, resp)
	assert.Equal(t, "DE", resp["user"].(map[string]any)["country"])

	status, _ = do(t, app, request{method: http.MethodPatch, path: "/users/" + alice, body: map[string]any{"username": "alice_3"}, headers: asUser(alice)})
	assert.Equal(t, http.StatusTooManyRequests, status)

	bob := createUser(t, app, "")
	status, _ = do(t, app, request{method: http.MethodPatch, path: "/users/" + alice, body: map[string]any{"bio": "hacked"}, headers: asUser(bob)})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, request{method: http.MethodDelete, path: "/users/" + alice, headers: asUser(alice)})
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, request{method: http.MethodGet, path: "/users/" + alice})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUsers_HeaderIdentityIgnoredWhenTokensEnforced(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = "secret"
	app := newTestApp(t, cfg, nil)

	victim := createUser(t, app, "victim")

	status, _ := do(t, app, request{method: http.MethodDelete, path: "/users/" + victim, headers: asUser(victim)})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = do(t, app, request{method: http.MethodPatch, path: "/users/" + victim, body: map[string]any{"bio": "hijacked"}, headers: asUser(victim)})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, resp := do(t, app, request{method: http.MethodGet, path: "/users/" + victim})
	require.Equal(t, http.StatusOK, status)
	assert.NotEqual(t, "hijacked", resp["user"].(map[string]any)["bio"])

	token := signToken(t, "secret", jwt.MapClaims{"sub": victim})
	status, _ = do(t, app, request{method: http.MethodDelete, path: "/users/" + victim, headers: map[string]string{"Authorization": token}})
	assert.Equal(t, http.StatusOK, status)
}
