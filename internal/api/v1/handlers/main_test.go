package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	v1 "precrastine-se/internal/api/v1"
	"precrastine-se/internal/api/v1/handlers"
	"precrastine-se/internal/middleware"
	"precrastine-se/internal/repository/memory"
	"precrastine-se/pkg/logger"
)

var testSecret = []byte("test-secret")

func TestMain(m *testing.M) {
	os.Setenv("GO_ENV", "test")
	logger.InitLoggers()
	code := m.Run()
	logger.SyncLoggers()
	os.Exit(code)
}

// newTestApp wires the full route table over in-memory repositories, with the
// cache disabled.
func newTestApp(t *testing.T) (*fiber.App, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	h := handlers.New(store.Users(), store.Tasks(), store.LifeAreas(), testSecret, time.Hour, nil)

	app := fiber.New()
	app.Use(middleware.ErrorHandler())
	v1.RegisterRoutes(app, h)
	return app, store
}

// doJSON performs a request and decodes the JSON response. body may be nil,
// a raw JSON string, or anything marshalable.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			encoded, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(encoded)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return resp.StatusCode, parsed
}

func registerUser(t *testing.T, app *fiber.App, email, name, password string) (token, userID string) {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"email":    email,
		"name":     name,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status, "register %s: %v", email, body)
	token, _ = body["token"].(string)
	require.NotEmpty(t, token)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	userID, _ = user["id"].(string)
	require.NotEmpty(t, userID)
	return token, userID
}

func createTask(t *testing.T, app *fiber.App, token string, payload any) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/api/tasks", token, payload)
	require.Equal(t, http.StatusCreated, status, "create task: %v", body)
	task, ok := body["task"].(map[string]any)
	require.True(t, ok)
	return task
}
