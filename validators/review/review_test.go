package reviewValidator

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookstore/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	bookID   = "64f1c0a9e13b4a2d9c8b4567"
	reviewID = "74f1c0a9e13b4a2d9c8b4567"
)

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestCreateReviewValidator(t *testing.T) {
	config.AppConfig = &config.Config{}

	app := fiber.New()
	app.Post("/books/:bookId/review", CreateReview(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": true, "message": "ok"})
	})

	valid := `{"rating":4,"reviewedBy":"John","reviewedAt":"2021-09-17"}`

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"malformed book id", "/books/nope/review", valid, http.StatusBadRequest, "nope is not a valid bookId"},
		{"empty body", "/books/" + bookID + "/review", `{}`, http.StatusBadRequest, "request body is not found"},
		{"missing rating", "/books/" + bookID + "/review", `{"reviewedBy":"John","reviewedAt":"2021-09-17"}`, http.StatusBadRequest, "rating is required"},
		{"rating too low", "/books/" + bookID + "/review", `{"rating":0,"reviewedBy":"John","reviewedAt":"2021-09-17"}`, http.StatusBadRequest, "rating must be between 1 and 5"},
		{"rating too high", "/books/" + bookID + "/review", `{"rating":6,"reviewedBy":"John","reviewedAt":"2021-09-17"}`, http.StatusBadRequest, "rating must be between 1 and 5"},
		{"missing reviewer", "/books/" + bookID + "/review", `{"rating":4,"reviewedAt":"2021-09-17"}`, http.StatusBadRequest, "reviewer's name is required"},
		{"missing reviewedAt", "/books/" + bookID + "/review", `{"rating":4,"reviewedBy":"John"}`, http.StatusBadRequest, "reviewedAt is required"},
		{"bad reviewedAt", "/books/" + bookID + "/review", `{"rating":4,"reviewedBy":"John","reviewedAt":"whenever"}`, http.StatusBadRequest, "reviewedAt must be a valid date"},
		{"valid payload", "/books/" + bookID + "/review", valid, http.StatusCreated, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := do(t, app, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestCreateReviewValidatorGuestAccess(t *testing.T) {
	config.AppConfig = &config.Config{AllowGuestReviews: true}
	t.Cleanup(func() { config.AppConfig = &config.Config{} })

	app := fiber.New()
	app.Post("/books/:bookId/review", CreateReview(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"status": true, "message": "ok"})
	})

	// Anonymous reviews pass without a reviewer name
	status, msg := do(t, app, http.MethodPost, "/books/"+bookID+"/review", `{"rating":4,"reviewedAt":"2021-09-17"}`)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "ok", msg)

	// Everything else is still validated
	status, msg = do(t, app, http.MethodPost, "/books/"+bookID+"/review", `{"reviewedAt":"2021-09-17"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "rating is required", msg)
}

func TestUpdateReviewValidator(t *testing.T) {
	app := fiber.New()
	app.Put("/books/:bookId/review/:reviewId", UpdateReview(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": true, "message": "ok"})
	})

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"malformed book id", "/books/nope/review/" + reviewID, `{"rating":3}`, http.StatusBadRequest, "nope is not a valid bookId"},
		{"malformed review id", "/books/" + bookID + "/review/nah", `{"rating":3}`, http.StatusBadRequest, "nah is not a valid reviewId"},
		{"empty body", "/books/" + bookID + "/review/" + reviewID, `{}`, http.StatusBadRequest, "request body is not found"},
		{"rating out of range", "/books/" + bookID + "/review/" + reviewID, `{"rating":9}`, http.StatusBadRequest, "rating must be between 1 and 5"},
		{"rating omitted is fine", "/books/" + bookID + "/review/" + reviewID, `{"review":"better on reread"}`, http.StatusOK, "ok"},
		{"valid rating", "/books/" + bookID + "/review/" + reviewID, `{"rating":5}`, http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := do(t, app, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestDeleteReviewValidator(t *testing.T) {
	app := fiber.New()
	app.Delete("/books/:bookId/review/:reviewId", DeleteReview(), func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": true, "message": "ok"})
	})

	status, msg := do(t, app, http.MethodDelete, "/books/nope/review/"+reviewID, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "nope is not a valid bookId", msg)

	status, msg = do(t, app, http.MethodDelete, "/books/"+bookID+"/review/nah", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "nah is not a valid reviewId", msg)

	status, _ = do(t, app, http.MethodDelete, "/books/"+bookID+"/review/"+reviewID, "")
	assert.Equal(t, http.StatusOK, status)
}
