package bookRoutes

import (
	"bookstore/config"
	bookController "bookstore/controllers/bookControllers"
	reviewController "bookstore/controllers/reviewControllers"
	"bookstore/middleware"
	bookValidator "bookstore/validators/book"
	reviewValidator "bookstore/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupBookRoutes(app *fiber.App) {
	bookGroup := app.Group("/books")

	bookGroup.Post("/", middleware.JWTMiddleware, bookValidator.CreateBook(), bookController.CreateBook)
	bookGroup.Get("/", middleware.JWTMiddleware, bookController.GetBooks)
	bookGroup.Get("/:bookId", middleware.JWTMiddleware, bookController.GetBookById)
	bookGroup.Put("/:bookId", middleware.JWTMiddleware, bookValidator.UpdateBook(), bookController.UpdateBook)
	bookGroup.Delete("/:bookId", middleware.JWTMiddleware, bookController.DeleteBook)

	// Review routes require a token unless guest reviews are enabled
	reviewGuard := middleware.JWTMiddleware
	if config.AppConfig.AllowGuestReviews {
		reviewGuard = func(c *fiber.Ctx) error { return c.Next() }
	}

	bookGroup.Post("/:bookId/review", reviewGuard, reviewValidator.CreateReview(), reviewController.CreateReview)
	bookGroup.Put("/:bookId/review/:reviewId", reviewGuard, reviewValidator.UpdateReview(), reviewController.UpdateReview)
	bookGroup.Delete("/:bookId/review/:reviewId", reviewGuard, reviewValidator.DeleteReview(), reviewController.DeleteReview)
}
