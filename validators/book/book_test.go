package bookValidator

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
)

const ownerID = "64f1c0a9e13b4a2d9c8b4567"

func createBookApp(tokenUserID string) *fiber.App {
	app := fiber.New()
	app.Post("/books", func(c *fiber.Ctx) error {
		c.Locals("userId", tokenUserID)
		return c.Next()
	}, CreateBook(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": true, "message": "ok"})
	})
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env.Message
}

func TestCreateBookValidator(t *testing.T) {
	valid := `{"title":"Moby Dick","excerpt":"A whale","userId":"` + ownerID + `","ISBN":"9780134685991","category":"fiction","subcategory":"classic","releasedAt":"2021-09-17"}`

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"identity mismatch caught first", strings.Replace(valid, ownerID, "74f1c0a9e13b4a2d9c8b4567", 1), http.StatusBadRequest, "token id or user id not matched"},
		{"missing title", `{"excerpt":"A whale","userId":"` + ownerID + `","ISBN":"x","category":"fiction","subcategory":"classic","releasedAt":"2021-09-17"}`, http.StatusBadRequest, "title is required"},
		{"missing excerpt", `{"title":"Moby Dick","userId":"` + ownerID + `","ISBN":"x","category":"fiction","subcategory":"classic","releasedAt":"2021-09-17"}`, http.StatusBadRequest, "excerpt is required"},
		{"missing category", `{"title":"Moby Dick","excerpt":"A whale","userId":"` + ownerID + `","ISBN":"x","releasedAt":"2021-09-17"}`, http.StatusBadRequest, "category is required"},
		{"missing releasedAt", `{"title":"Moby Dick","excerpt":"A whale","userId":"` + ownerID + `","ISBN":"x","category":"fiction","subcategory":"classic"}`, http.StatusBadRequest, "releasedAt is required"},
		{"unparseable releasedAt", strings.Replace(valid, "2021-09-17", "not-a-date", 1), http.StatusBadRequest, "releasedAt must be a valid date"},
		{"valid payload", valid, http.StatusCreated, "ok"},
	}

	app := createBookApp(ownerID)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := post(t, app, "/books", tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCreateBookValidatorMissingUserID(t *testing.T) {
	// An absent body userId also fails the identity comparison
	app := createBookApp(ownerID)
	status, msg := post(t, app, "/books", `{"title":"Moby Dick","excerpt":"A whale"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "token id or user id not matched", msg)
}

func TestUpdateBookValidator(t *testing.T) {
	app := fiber.New()
	app.Put("/books/:bookId", UpdateBook(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": true, "message": "ok"})
	})

	run := func(path, body string) (int, string) {
		req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var env struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(raw, &env))
		return resp.StatusCode, env.Message
	}

	status, msg := run("/books/"+ownerID, `{}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "request body not found", msg)

	status, msg = run("/books/bad-id", `{"title":"New"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "bad-id is not a valid bookId", msg)

	status, msg = run("/books/"+ownerID, `{"releasedAt":"never"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "releasedAt must be a valid date", msg)

	status, _ = run("/books/"+ownerID, `{"title":"New"}`)
	assert.Equal(t, http.StatusOK, status)
}
