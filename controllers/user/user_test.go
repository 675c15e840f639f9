package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"schoolhub/config"
	"schoolhub/database"
	"schoolhub/middleware"
	"schoolhub/models"
	userRoutes "schoolhub/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{Port: "5000", JWTKey: "test-secret"}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Class{}, &models.SelectedClass{}, &models.Payment{}))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	userRoutes.SetupUserRoutes(app)
	return app
}

func authToken(t *testing.T) string {
	token, err := middleware.GenerateJWT(map[string]interface{}{"email": "tester@school.com"})
	require.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, payload interface{}) (*apiResponse, int) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	parsed := new(apiResponse)
	require.NoError(t, json.Unmarshal(raw, parsed))
	return parsed, resp.StatusCode
}

func TestRegisterUserCreatesRecord(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	resp, code := doJSON(t, app, "POST", "/users", token, fiber.Map{
		"name":  "Ada Lovelace",
		"email": "ada@school.com",
	})

	assert.Equal(t, fiber.StatusCreated, code)
	assert.True(t, resp.Status)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterUserIdempotentOnEmail(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	_, code := doJSON(t, app, "POST", "/users", token, fiber.Map{"email": "ada@school.com", "name": "Ada"})
	require.Equal(t, fiber.StatusCreated, code)

	resp, code := doJSON(t, app, "POST", "/users", token, fiber.Map{"email": "ada@school.com", "name": "Someone Else"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "user already exists", resp.Message)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count, "repeat signup must not insert")
}

func TestRegisterUserRequiresToken(t *testing.T) {
	app := setupTest(t)

	_, code := doJSON(t, app, "POST", "/users", "", fiber.Map{"email": "ada@school.com"})
	assert.Equal(t, fiber.StatusUnauthorized, code)

	var count int64
	database.Database.Db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(0), count, "rejected request must not write")
}

func TestGetUsersListsAll(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	database.Database.Db.Create(&models.User{Email: "a@school.com"})
	database.Database.Db.Create(&models.User{Email: "b@school.com"})

	resp, code := doJSON(t, app, "GET", "/users", token, nil)
	assert.Equal(t, fiber.StatusOK, code)

	var users []models.User
	require.NoError(t, json.Unmarshal(resp.Data, &users))
	assert.Len(t, users, 2)
}

func TestGetUserRoleUnknownUserIsNull(t *testing.T) {
	app := setupTest(t)

	resp, code := doJSON(t, app, "GET", "/users/admin/ghost@school.com", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Nil(t, data["role"])
}

func TestGetUserRoleRolelessUserIsNull(t *testing.T) {
	app := setupTest(t)

	database.Database.Db.Create(&models.User{Email: "plain@school.com"})

	resp, code := doJSON(t, app, "GET", "/users/admin/plain@school.com", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Nil(t, data["role"])
}

func TestGetUserRoleReturnsAssignedRole(t *testing.T) {
	app := setupTest(t)

	database.Database.Db.Create(&models.User{Email: "boss@school.com", Role: "admin"})

	resp, code := doJSON(t, app, "GET", "/users/admin/boss@school.com", "", nil)
	assert.Equal(t, fiber.StatusOK, code)

	var data map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "admin", data["role"])
}

func TestUpdateUserRole(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	user := models.User{Email: "promote@school.com"}
	database.Database.Db.Create(&user)

	_, code := doJSON(t, app, "PUT", fmt.Sprintf("/users/%d", user.ID), token, fiber.Map{"role": "instructor"})
	assert.Equal(t, fiber.StatusOK, code)

	var updated models.User
	database.Database.Db.First(&updated, user.ID)
	assert.Equal(t, "instructor", updated.Role)
}

func TestUpdateUserRoleRejectsUnknownRole(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	user := models.User{Email: "promote@school.com"}
	database.Database.Db.Create(&user)

	_, code := doJSON(t, app, "PUT", fmt.Sprintf("/users/%d", user.ID), token, fiber.Map{"role": "wizard"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
}

func TestUpdateUserRoleMissingUser(t *testing.T) {
	app := setupTest(t)
	token := authToken(t)

	_, code := doJSON(t, app, "PUT", "/users/9999", token, fiber.Map{"role": "admin"})
	assert.Equal(t, fiber.StatusNotFound, code)
}
