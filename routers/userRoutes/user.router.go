package userRoutes

import (
	userController "bookstore/controllers/userControllers"
	userValidator "bookstore/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	app.Post("/User", userValidator.Register(), userController.Register)
	app.Post("/login", userValidator.Login(), userController.Login)
}
