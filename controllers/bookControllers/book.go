package bookController

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bookstore/config"
	"bookstore/database"
	"bookstore/middleware"
	"bookstore/models"
	"bookstore/utils"
	"bookstore/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// bookListItem is the projected shape returned by GET /books
type bookListItem struct {
	ID         primitive.ObjectID `bson:"_id" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	Excerpt    string             `bson:"excerpt" json:"excerpt"`
	UserID     primitive.ObjectID `bson:"userId" json:"userId"`
	Category   string             `bson:"category" json:"category"`
	ReleasedAt time.Time          `bson:"releasedAt" json:"releasedAt"`
	Reviews    int                `bson:"reviews" json:"reviews"`
}

// CreateBook creates a book owned by the authenticated user.
// POST /books
func CreateBook(c *fiber.Ctx) error {
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

	// Books are stored with trimmed title and ISBN, so the uniqueness
	// checks must run against the trimmed form too
	reqData.Title = strings.TrimSpace(reqData.Title)
	reqData.ISBN = strings.TrimSpace(reqData.ISBN)

	ctx := c.Context()
	books := database.Books()

	// Uniqueness is scoped to non-deleted books, a deleted book frees its title and ISBN
	if err := books.FindOne(ctx, bson.M{"title": reqData.Title, "isDeleted": false}).Err(); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s title is already in use", reqData.Title), nil)
	} else if err != mongo.ErrNoDocuments {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if err := books.FindOne(ctx, bson.M{"ISBN": reqData.ISBN, "isDeleted": false}).Err(); err == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s ISBN already exists", reqData.ISBN), nil)
	} else if err != mongo.ErrNoDocuments {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	userID, _ := primitive.ObjectIDFromHex(reqData.UserID)
	if err := database.Users().FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "userId not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	releasedAt, err := now.Parse(reqData.ReleasedAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "releasedAt must be a valid date", nil)
	}

	nowTime := time.Now()
	book := models.Book{
		Title:       reqData.Title,
		Excerpt:     reqData.Excerpt,
		UserID:      userID,
		ISBN:        reqData.ISBN,
		Category:    reqData.Category,
		Subcategory: reqData.Subcategory,
		Reviews:     0,
		IsDeleted:   false,
		ReleasedAt:  releasedAt,
		CreatedAt:   nowTime,
		UpdatedAt:   nowTime,
	}

	// Cover lookup is best effort, a miss never fails the request
	if config.AppConfig.EnrichMetadata {
		if coverURL, err := utils.LookupCoverURL(book.ISBN); err != nil {
			log.Printf("Cover lookup failed for ISBN %s: %v", book.ISBN, err)
		} else {
			book.CoverURL = coverURL
		}
	}

	result, err := books.InsertOne(ctx, book)
	if err != nil {
		log.Printf("Error saving book to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
	book.ID = result.InsertedID.(primitive.ObjectID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "book created successfully", book)
}

// GetBooks lists non-deleted books, optionally filtered by userId, category
// and subcategory, sorted by title.
// GET /books
func GetBooks(c *fiber.Ctx) error {
	filter := bson.M{"isDeleted": false}

	if userId := c.Query("userId"); validators.IsPresent(userId) && validators.IsWellFormedID(userId) {
		objID, _ := primitive.ObjectIDFromHex(userId)
		filter["userId"] = objID
	}
	if category := c.Query("category"); validators.IsPresent(category) {
		filter["category"] = strings.TrimSpace(category)
	}
	if subcategory := c.Query("subcategory"); validators.IsPresent(subcategory) {
		filter["subcategory"] = strings.TrimSpace(subcategory)
	}

	ctx := c.Context()

	opts := options.Find().
		SetSort(bson.D{{Key: "title", Value: 1}}).
		SetProjection(bson.M{
			"title":      1,
			"excerpt":    1,
			"userId":     1,
			"category":   1,
			"releasedAt": 1,
			"reviews":    1,
		})

	cursor, err := database.Books().Find(ctx, filter, opts)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	books := make([]bookListItem, 0)
	if err := cursor.All(ctx, &books); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if len(books) == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No Books Found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Books list", books)
}

// GetBookById fetches a book with its reviews embedded as reviewsData.
// GET /books/:bookId
func GetBookById(c *fiber.Ctx) error {
	bookId := c.Params("bookId")
	if !validators.IsWellFormedID(bookId) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
	}
	bookObjID, _ := primitive.ObjectIDFromHex(bookId)

	ctx := c.Context()

	var book models.Book
	if err := database.Books().FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	cursor, err := database.Reviews().Find(ctx, bson.M{"bookId": book.ID, "isDeleted": false})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	data := models.BookWithReviews{Book: book, ReviewsData: reviews}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Book found", data)
}

// UpdateBook lets the owner change title, excerpt, ISBN and release date.
// PUT /books/:bookId
func UpdateBook(c *fiber.Ctx) error {
	bookId := c.Params("bookId")
	bookObjID, _ := primitive.ObjectIDFromHex(bookId)

	reqData := new(struct {
		Title      string `json:"title"`
		Excerpt    string `json:"excerpt"`
		ISBN       string `json:"ISBN"`
		ReleasedAt string `json:"releasedAt"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ctx := c.Context()
	books := database.Books()

	var book models.Book
	if err := books.FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	// Only the owner may update the book
	userID, _ := c.Locals("userId").(string)
	if userID != book.UserID.Hex() {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied", nil)
	}

	update := bson.M{"updatedAt": time.Now()}

	if validators.IsPresent(reqData.Title) {
		title := strings.TrimSpace(reqData.Title)
		err := books.FindOne(ctx, bson.M{"title": title, "isDeleted": false, "_id": bson.M{"$ne": book.ID}}).Err()
		if err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s title is already in use", title), nil)
		} else if err != mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}
		update["title"] = title
	}
	if validators.IsPresent(reqData.ISBN) {
		isbn := strings.TrimSpace(reqData.ISBN)
		err := books.FindOne(ctx, bson.M{"ISBN": isbn, "isDeleted": false, "_id": bson.M{"$ne": book.ID}}).Err()
		if err == nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s ISBN already exists", isbn), nil)
		} else if err != mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
		}
		update["ISBN"] = isbn
	}
	if validators.IsPresent(reqData.Excerpt) {
		update["excerpt"] = reqData.Excerpt
	}
	if validators.IsPresent(reqData.ReleasedAt) {
		releasedAt, err := now.Parse(reqData.ReleasedAt)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "releasedAt must be a valid date", nil)
		}
		update["releasedAt"] = releasedAt
	}

	var updated models.Book
	err := books.FindOneAndUpdate(ctx,
		bson.M{"_id": book.ID, "isDeleted": false},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "book updated successfully", updated)
}

// DeleteBook soft-deletes a book owned by the authenticated user.
// DELETE /books/:bookId
func DeleteBook(c *fiber.Ctx) error {
	bookId := c.Params("bookId")
	if !validators.IsWellFormedID(bookId) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, fmt.Sprintf("%s is not a valid bookId", bookId), nil)
	}
	bookObjID, _ := primitive.ObjectIDFromHex(bookId)

	ctx := c.Context()
	books := database.Books()

	var book models.Book
	if err := books.FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Decode(&book); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	userID, _ := c.Locals("userId").(string)
	if userID != book.UserID.Hex() {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorised access", nil)
	}

	nowTime := time.Now()
	var deleted models.Book
	err := books.FindOneAndUpdate(ctx,
		bson.M{"_id": book.ID, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true, "deletedAt": nowTime, "updatedAt": nowTime}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "book deleted successfully", deleted)
}
