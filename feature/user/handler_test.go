package user_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"asteroids-backend/core/database"
	"asteroids-backend/core/middleware/auth"
	"asteroids-backend/core/model"
	"asteroids-backend/feature/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var testAuthCfg = auth.Config{Secret: "test-secret", TokenTTLHours: 1}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	app := fiber.New()
	api := app.Group("/api/v1")
	feat := user.NewFeature(db, zap.NewNop(), testAuthCfg, auth.New(testAuthCfg, db))
	require.NoError(t, feat.Load(api))

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, target, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestAccountLifecycle(t *testing.T) {
	app, db := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/user/", "",
		`{"username": "player", "password": "secret"}`)
	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "user created", body["success"])

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/user/login", "",
		`{"username": "player", "password": "secret"}`)
	require.Equal(t, fiber.StatusOK, status)
	token, ok := body["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)

	status, body = doJSON(t, app, fiber.MethodGet, "/api/v1/user/", token, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "player", body["username"])

	status, body = doJSON(t, app, fiber.MethodDelete, "/api/v1/user/", token, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user deleted", body["success"])

	var users int64
	db.Model(&model.User{}).Count(&users)
	assert.Zero(t, users)

	// The token now points at a deleted user
	status, body = doJSON(t, app, fiber.MethodGet, "/api/v1/user/", token, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Cannot find user. Do you need to logout?", body["error"])
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := setupApp(t)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/user/", "", `{"username": "player"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "password missing", body["error"])

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/user/", "", `{"password": "secret"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "username missing", body["error"])

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/user/", "", `not json`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "JSON body missing", body["error"])
}

func TestLoginWrongCredentials(t *testing.T) {
	app, _ := setupApp(t)

	status, _ := doJSON(t, app, fiber.MethodPost, "/api/v1/user/", "",
		`{"username": "player", "password": "secret"}`)
	require.Equal(t, fiber.StatusCreated, status)

	status, body := doJSON(t, app, fiber.MethodPost, "/api/v1/user/login", "",
		`{"username": "player", "password": "wrong"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "username or password wrong", body["error"])

	status, body = doJSON(t, app, fiber.MethodPost, "/api/v1/user/login", "",
		`{"username": "ghost", "password": "secret"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "username or password wrong", body["error"])
}
