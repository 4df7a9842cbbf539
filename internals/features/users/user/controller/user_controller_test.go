package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	database "usermapper_backend/internals/databases"
	helper "usermapper_backend/internals/helpers"
)

type envelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	ErrorCode  string              `json:"error_code"`
	Errors     map[string][]string `json:"errors"`
	Data       json.RawMessage     `json:"data"`
	Pagination *helper.Pagination  `json:"pagination"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctrl := NewUserController(db)
	app.Get("/users", ctrl.ListUsers)
	app.Get("/users/:id", ctrl.GetUser)
	app.Post("/users", ctrl.CreateUser)
	app.Put("/users/:id", ctrl.UpdateUser)
	app.Patch("/users/:id/email", ctrl.UpdateEmail)
	app.Delete("/users/:id", ctrl.DeleteUser)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestCreateUser(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/users", `{"id":2,"name":"Bob"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"id":2,"name":"Bob"}`, string(env.Data))

	status, env = do(t, app, http.MethodPost, "/users", `{"id":2,"name":"Bobby"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.ErrorCode)
}

func TestCreateUser_BlankName(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/users", `{"id":3,"name":"  "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
	assert.Equal(t, "User name cannot be null or empty", env.Message)
	assert.Equal(t, []string{"User name cannot be null or empty"}, env.Errors["name"])
}

func TestCreateUser_BadBody(t *testing.T) {
	app := newTestApp(t)

	status, env := do(t, app, http.MethodPost, "/users", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", env.ErrorCode)
}

func TestGetUser(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/users", `{"id":1,"name":"Alice"}`)

	status, env := do(t, app, http.MethodGet, "/users/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Alice"}`, string(env.Data))

	status, env = do(t, app, http.MethodGet, "/users/42", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.ErrorCode)

	status, _ = do(t, app, http.MethodGet, "/users/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListUsers(t *testing.T) {
	app := newTestApp(t)
	for _, body := range []string{`{"id":1,"name":"A"}`, `{"id":2,"name":"B"}`, `{"id":3,"name":"C"}`} {
		status, _ := do(t, app, http.MethodPost, "/users", body)
		require.Equal(t, http.StatusCreated, status)
	}

	status, env := do(t, app, http.MethodGet, "/users?page=2&per_page=2", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[{"id":3,"name":"C"}]`, string(env.Data))
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, int64(3), env.Pagination.Total)
	assert.Equal(t, 2, env.Pagination.TotalPages)
	assert.False(t, env.Pagination.HasNext)
	assert.True(t, env.Pagination.HasPrev)
	assert.Equal(t, 1, env.Pagination.Count)
}

func TestUpdateUserAndEmail(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/users", `{"id":1,"name":"Alice"}`)

	status, env := do(t, app, http.MethodPut, "/users/1", `{"name":"Alicia"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"id":1,"name":"Alicia"}`, string(env.Data))

	status, env = do(t, app, http.MethodPatch, "/users/1/email", `{"email":"Alicia@Mail.com"}`)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"user":{"id":1,"name":"Alicia"},"email":"alicia@mail.com"}`, string(env.Data))

	status, env = do(t, app, http.MethodPatch, "/users/1/email", `{"email":"nope"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Contains(t, env.Errors, "email")

	status, _ = do(t, app, http.MethodPut, "/users/1", `{"name":""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
}

func TestDeleteUser(t *testing.T) {
	app := newTestApp(t)
	do(t, app, http.MethodPost, "/users", `{"id":1,"name":"Alice"}`)

	status, _ := do(t, app, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusOK, status)

	status, env := do(t, app, http.MethodDelete, "/users/1", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "user not found", env.Message)
}
