package main

import (
	"log"

	"bookstore/config"
	"bookstore/database"
	bookRoutes "bookstore/routers/bookRoutes"
	userRoutes "bookstore/routers/userRoutes"
	"bookstore/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	userRoutes.SetupUserRoutes(app)
	bookRoutes.SetupBookRoutes(app)

	if scheduler := utils.InitializeReviewCountScheduler(); scheduler != nil {
		defer scheduler.Stop()
	}

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
