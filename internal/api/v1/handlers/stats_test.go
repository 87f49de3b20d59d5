package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getStats(t *testing.T, app *fiber.App, token string) map[string]any {
	t.Helper()
	status, body := doJSON(t, app, http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, status)
	stats, ok := body["stats"].(map[string]any)
	require.True(t, ok)
	return stats
}

func TestStatsFreshUser(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "ana@example.com", "Ana", "secret123")

	stats := getStats(t, app, token)
	assert.Equal(t, float64(0), stats["totalTasks"])
	assert.Equal(t, float64(0), stats["completedTasks"])
	assert.Equal(t, float64(0), stats["completionRate"])
	assert.Equal(t, float64(0), stats["todayTasks"])
	assert.Equal(t, float64(0), stats["highPriorityTasks"])
	assert.Equal(t, float64(5), stats["averageLifeScore"])
}

func TestStatsCounters(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "ana@example.com", "Ana", "secret123")

	today := time.Now().Format(time.RFC3339)
	nextWeek := time.Now().AddDate(0, 0, 7).Format(time.RFC3339)

	first := createTask(t, app, token, fiber.Map{"title": "hoje", "dueDate": today})
	createTask(t, app, token, fiber.Map{"title": "depois", "dueDate": nextWeek})
	createTask(t, app, token, fiber.Map{"title": "urgente", "priority": "high"})
	createTask(t, app, token, fiber.Map{"title": "sem prazo"})

	status, _ := doJSON(t, app, http.MethodPut, "/api/tasks/"+first["id"].(string), token, `{"completed":true}`)
	require.Equal(t, http.StatusOK, status)

	stats := getStats(t, app, token)
	assert.Equal(t, float64(4), stats["totalTasks"])
	assert.Equal(t, float64(1), stats["completedTasks"])
	assert.Equal(t, float64(25), stats["completionRate"])
	assert.Equal(t, float64(1), stats["todayTasks"])
	assert.Equal(t, float64(1), stats["highPriorityTasks"])
}

func TestStatsAverageLifeScoreRounding(t *testing.T) {
	app, _ := newTestApp(t)
	token, _ := registerUser(t, app, "ana@example.com", "Ana", "secret123")

	status, _ := doJSON(t, app, http.MethodPut, "/api/life-areas/health", token, `{"score":10}`)
	require.Equal(t, http.StatusOK, status)

	// 7 areas at 5 plus one at 10 averages 5.625, rounded to one decimal.
	stats := getStats(t, app, token)
	assert.Equal(t, 5.6, stats["averageLifeScore"])
}

func TestHealthCheck(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "1.0.0", body["version"])

	ts, ok := body["timestamp"].(string)
	require.True(t, ok)
	_, err := time.Parse(time.RFC3339, ts)
	assert.NoError(t, err)
}
