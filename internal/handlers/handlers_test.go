package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage"
	"github.com/ahmetcoskunkizilkaya/recovery-backend/internal/storage/inmemory"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage:                config.StorageMemory,
		UsernameChangeCooldown: time.Hour,
		CORSOrigins:            "*",
	}
}

func newTestApp(t *testing.T, cfg *config.Config, store storage.Store) *fiber.App {
	t.Helper()
	if store == nil {
		store = inmemory.New()
	}

	content := services.NewContentPolicy()
	app := fiber.New()
	routes.Setup(app, cfg,
		handlers.NewHealthHandler(store, cfg.Storage),
		handlers.NewReportHandler(services.NewReportService(store)),
		handlers.NewFeedHandler(services.NewFeedService(store, content)),
		handlers.NewUserHandler(services.NewUserService(store, content, cfg.UsernameChangeCooldown)),
		handlers.NewRecoveryHandler(services.NewRecoveryService(store)),
	)
	return app
}

type request struct {
	method  string
	path    string
	body    any
	headers map[string]string
}

func do(t *testing.T, app *fiber.App, r request) (int, map[string]any) {
	t.Helper()

	var body io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func asUser(id string) map[string]string {
	return map[string]string{"x-user-id": id}
}

// createUser onboards a user through the API and returns its id.
func createUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	body := map[string]any{"anonymous": true}
	if username != "" {
		body["username"] = username
	}
	status, resp := do(t, app, request{method: http.MethodPost, path: "/users", body: body})
	require.Equal(t, http.StatusCreated, status, resp)
	return resp["user"].(map[string]any)["id"].(string)
}
