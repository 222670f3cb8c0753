package handlers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_PostLifecycle(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)
	alice := createUser(t, app, "alice")
	bob := createUser(t, app, "bob")

	status, _ := do(t, app, request{method: http.MethodPost, path: "/posts", body: map[string]any{"content": "hi"}})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, resp := do(t, app, request{
		method:  http.MethodPost,
		path:    "/posts",
		body:    map[string]any{"content": "90 days <em>clean</em>", "postType": "milestone"},
		headers: asUser(alice),
	})
	require.Equal(t, http.StatusCreated, status, resp)
	post := resp["post"].(map[string]any)
	postID := post["id"].(string)
	assert.Equal(t, "90 days clean", post["content"])
	assert.Equal(t, "milestone", post["post_type"])

	status, resp = do(t, app, request{method: http.MethodPost, path: "/posts/" + postID + "/reactions", body: map[string]any{"type": "proud"}, headers: asUser(bob)})
	require.Equal(t, http.StatusOK, status, resp)
	assert.Equal(t, true, resp["active"])

	status, resp = do(t, app, request{method: http.MethodPost, path: "/posts/" + postID + "/reactions", body: map[string]any{"type": "thumbs_up"}, headers: asUser(bob)})
	assert.Equal(t, http.StatusBadRequest, status, resp)

	status, resp = do(t, app, request{method: http.MethodPost, path: "/posts/" + postID + "/comments", body: map[string]any{"content": "so proud of you"}, headers: asUser(bob)})
	require.Equal(t, http.StatusCreated, status, resp)
	commentID := resp["comment"].(map[string]any)["id"].(string)

	status, resp = do(t, app, request{method: http.MethodPost, path: "/comments/" + commentID + "/reactions", headers: asUser(alice)})
	require.Equal(t, http.StatusOK, status, resp)
	assert.Equal(t, "hear_you", resp["type"])
	assert.Equal(t, true, resp["active"])

	status, resp = do(t, app, request{method: http.MethodGet, path: "/posts", headers: asUser(bob)})
	require.Equal(t, http.StatusOK, status)
	posts := resp["posts"].([]any)
	require.Len(t, posts, 1)
	listed := posts[0].(map[string]any)
	assert.Equal(t, float64(1), listed["comment_count"])
	assert.Equal(t, float64(1), listed["reactions"].(map[string]any)["proud"])
	assert.Equal(t, float64(0), listed["reactions"].(map[string]any)["hear_you"])
	assert.Equal(t, []any{"proud"}, listed["my_reactions"])

	status, resp = do(t, app, request{method: http.MethodGet, path: "/posts/" + postID + "/comments"})
	require.Equal(t, http.StatusOK, status)
	comments := resp["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Equal(t, float64(1), comments[0].(map[string]any)["reactions"].(map[string]any)["hear_you"])

	status, _ = do(t, app, request{method: http.MethodDelete, path: "/posts/" + postID, headers: asUser(bob)})
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = do(t, app, request{method: http.MethodDelete, path: "/posts/" + postID, headers: asUser(alice)})
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, request{method: http.MethodGet, path: "/posts/" + postID})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestFeed_Validation(t *testing.T) {
	app := newTestApp(t, testConfig(), nil)
	alice := createUser(t, app, "")

	status, _ := do(t, app, request{method: http.MethodPost, path: "/posts", body: map[string]any{"content": ""}, headers: asUser(alice)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: "/posts", body: map[string]any{"content": "x", "postType": "poll"}, headers: asUser(alice)})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: "/posts", body: map[string]any{"content": "x"}, headers: asUser(uuid.NewString())})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodGet, path: "/posts?addictionId=nope"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, request{method: http.MethodPost, path: "/posts/" + uuid.NewString() + "/comments", body: map[string]any{"content": "hello"}, headers: asUser(alice)})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = do(t, app, request{method: http.MethodGet, path: "/posts/not-a-uuid"})
	assert.Equal(t, http.StatusNotFound, status)
}
