package bookValidator

import (
	"fmt"

	"bookstore/middleware"
	"bookstore/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CreateBook validator middleware, runs after JWTMiddleware
func CreateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData := new(struct {
			Title       string `json:"title"`
			Excerpt     string `json:"excerpt"`
			UserID      string `json:"userId"`
			ISBN        string `json:"ISBN"`
			Category    string `json:"category"`
			Subcategory string `json:"subcategory"`
			ReleasedAt  string `json:"releasedAt"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// The caller may only register books under their own identity
		userID, _ := c.Locals("userId").(string)
		if userID != reqData.UserID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "token id or user id not matched", nil)
		}

		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "request body is not found", nil)
		}
		if !validators.IsPresent(reqData.Title) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "title is required", nil)
		}
		if !validators.IsPresent(reqData.Excerpt) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "excerpt is required", nil)
		}
		if !validators.IsPresent(reqData.UserID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId is required", nil)
		}
		if !validators.IsWellFormedID(reqData.UserID) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid userId", reqData.UserID), nil)
		}
		if !validators.IsPresent(reqData.ISBN) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ISBN is required", nil)
		}
		if !validators.IsPresent(reqData.Category) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "category is required", nil)
		}
		if !validators.IsPresent(reqData.Subcategory) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "subcategory is required", nil)
		}
		if !validators.IsPresent(reqData.ReleasedAt) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "releasedAt is required", nil)
		}
		if _, err := now.Parse(reqData.ReleasedAt); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "releasedAt must be a valid date", nil)
		}

		return c.Next()
	}
}

// UpdateBook validator middleware
func UpdateBook() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "request body is not found", nil)
		}

		bookId := c.Params("bookId")
		if !validators.IsWellFormedID(bookId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
		}

		reqData := new(struct {
			ReleasedAt string `json:"releasedAt"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.ReleasedAt != "" {
			if _, err := now.Parse(reqData.ReleasedAt); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "releasedAt must be a valid date", nil)
			}
		}

		return c.Next()
	}
}
