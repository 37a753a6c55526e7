package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/we-dream-team/Halimou/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupApp gives each test its own in-memory database and a fully routed
// application.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	database.DB = db
	database.Migrate(db)

	return New("*")
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode(t *testing.T, raw []byte, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out))
}

func detailOf(t *testing.T, raw []byte) string {
	t.Helper()
	var payload struct {
		Detail string `json:"detail"`
	}
	decode(t, raw, &payload)
	return payload.Detail
}

func TestHealthCheck(t *testing.T) {
	app := setupApp(t)

	status, raw := doJSON(t, app, http.MethodGet, "/api/", nil)
	require.Equal(t, http.StatusOK, status)

	var payload map[string]string
	decode(t, raw, &payload)
	require.Equal(t, "running", payload["status"])
	require.NotEmpty(t, payload["message"])
}
