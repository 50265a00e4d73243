package userController

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bookstore/config"
	"bookstore/database"
	"bookstore/middleware"
	"bookstore/models"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a user document from the request body.
// POST /User
func Register(c *fiber.Ctx) error {
	var reqData models.User

	// Parse Request Body
	if err := c.BodyParser(&reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	reqData.Phone = strings.TrimSpace(reqData.Phone)
	reqData.Email = strings.TrimSpace(reqData.Email)

	ctx := c.Context()
	users := database.Users()

	// Check if phone already exists
	if err := users.FindOne(ctx, bson.M{"phone": reqData.Phone}).Err(); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s phone is already registered", reqData.Phone), nil)
	} else if err != mongo.ErrNoDocuments {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	// Check if email already exists
	if err := users.FindOne(ctx, bson.M{"email": reqData.Email}).Err(); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s email is already registered", reqData.Email), nil)
	} else if err != mongo.ErrNoDocuments {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	nowTime := time.Now()
	newUser := models.User{
		Title:     strings.TrimSpace(reqData.Title),
		Name:      strings.TrimSpace(reqData.Name),
		Phone:     reqData.Phone,
		Email:     reqData.Email,
		Password:  string(hashedPassword),
		Address:   reqData.Address,
		CreatedAt: nowTime,
		UpdatedAt: nowTime,
	}

	result, err := users.InsertOne(ctx, newUser)
	if err != nil {
		// The unique indexes on phone and email backstop the checks above
		if mongo.IsDuplicateKeyError(err) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "phone or email is already registered", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	newUser.ID = result.InsertedID.(primitive.ObjectID)

	// Clean Response
	newUser.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "user created successfully", newUser)
}

// Login authenticates a user by email and password and issues a JWT.
// POST /login
func Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Failed to parse request body!", nil)
	}

	ctx := c.Context()

	var user models.User
	if err := database.Users().FindOne(ctx, bson.M{"email": strings.TrimSpace(reqData.Email)}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "user not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	// A wrong password is indistinguishable from an unknown email
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "user not found", nil)
	}

	token, err := middleware.GenerateJWT(user.ID.Hex())
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token!", nil)
	}

	c.Set("x-api-key", token)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "user logged in successfully", fiber.Map{"token": token})
}
