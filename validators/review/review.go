package reviewValidator

import (
	"fmt"

	"bookstore/config"
	"bookstore/middleware"
	"bookstore/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// CreateReview validator middleware
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookId := c.Params("bookId")
		if !validators.IsWellFormedID(bookId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
		}

		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "request body is not found", nil)
		}

		reqData := new(struct {
			Rating     *int   `json:"rating"`
			ReviewedBy string `json:"reviewedBy"`
			ReviewedAt string `json:"reviewedAt"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Rating == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "rating is required", nil)
		}
		if !(*reqData.Rating > 0 && *reqData.Rating < 6) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "rating must be between 1 and 5", nil)
		}
		// Open review routes accept anonymous reviews, which default to "Guest"
		if !validators.IsPresent(reqData.ReviewedBy) && !config.AppConfig.AllowGuestReviews {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reviewer's name is required", nil)
		}
		if !validators.IsPresent(reqData.ReviewedAt) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reviewedAt is required", nil)
		}
		if _, err := now.Parse(reqData.ReviewedAt); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reviewedAt must be a valid date", nil)
		}

		return c.Next()
	}
}

// UpdateReview validator middleware
func UpdateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookId := c.Params("bookId")
		if !validators.IsWellFormedID(bookId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
		}
		reviewId := c.Params("reviewId")
		if !validators.IsWellFormedID(reviewId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid reviewId", reviewId), nil)
		}

		body := make(map[string]interface{})
		if err := c.BodyParser(&body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if !validators.IsNonEmptyBody(body) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "request body is not found", nil)
		}

		reqData := new(struct {
			Rating *int `json:"rating"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}
		if reqData.Rating != nil && !(*reqData.Rating > 0 && *reqData.Rating < 6) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "rating must be between 1 and 5", nil)
		}

		return c.Next()
	}
}

// DeleteReview validator middleware
func DeleteReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		bookId := c.Params("bookId")
		if !validators.IsWellFormedID(bookId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
		}
		reviewId := c.Params("reviewId")
		if !validators.IsWellFormedID(reviewId) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid reviewId", reviewId), nil)
		}
		return c.Next()
	}
}
