package userValidator

import (
	"bookstore/middleware"
	"bookstore/validators"

	"github.com/gofiber/fiber/v2"
)

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "value in request body is required", nil)
		}

		reqData := new(struct {
			Title    string `json:"title"`
			Name     string `json:"name"`
			Phone    string `json:"phone"`
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !validators.IsPresent(reqData.Title) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "title is required", nil)
		}
		if !validators.IsValidTitle(reqData.Title) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "title must be one of Mr, Mrs, Miss", nil)
		}
		if !validators.IsPresent(reqData.Name) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "name is required", nil)
		}
		if !validators.IsPresent(reqData.Phone) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "phone is required", nil)
		}
		if !validators.IsWellFormedPhone(reqData.Phone) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "phone number is not valid", nil)
		}
		if !validators.IsPresent(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "email is required", nil)
		}
		if !validators.IsWellFormedEmail(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "email should be a valid email address", nil)
		}
		if !validators.IsPresent(reqData.Password) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "password is required", nil)
		}
		if !(len(reqData.Password) > 7 && len(reqData.Password) < 16) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "password length should be between 8 and 15", nil)
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "value in request body is required", nil)
		}

		reqData := new(struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !validators.IsPresent(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "email is required", nil)
		}
		if !validators.IsWellFormedEmail(reqData.Email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "email should be a valid email address", nil)
		}
		if !validators.IsPresent(reqData.Password) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "password is required", nil)
		}
		if !(len(reqData.Password) > 7 && len(reqData.Password) < 16) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "password length should be between 8 and 15", nil)
		}

		return c.Next()
	}
}
