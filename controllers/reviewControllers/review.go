package reviewController

import (
	"log"
	"strings"

	"bookstore/database"
	"bookstore/middleware"
	"bookstore/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateReview adds a review to a book and bumps its review counter.
// POST /books/:bookId/review
func CreateReview(c *fiber.Ctx) error {
	bookObjID, _ := primitive.ObjectIDFromHex(c.Params("bookId"))

	reqData := new(struct {
		Rating     *int   `json:"rating"`
		ReviewedBy string `json:"reviewedBy"`
		ReviewedAt string `json:"reviewedAt"`
		Review     string `json:"review"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ctx := c.Context()

	if err := database.Books().FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	reviewedAt, err := now.Parse(reqData.ReviewedAt)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "reviewedAt must be a valid date", nil)
	}

	reviewedBy := strings.TrimSpace(reqData.ReviewedBy)
	if reviewedBy == "" {
		reviewedBy = "Guest"
	}

	review := models.Review{
		BookID:     bookObjID,
		ReviewedBy: reviewedBy,
		ReviewedAt: reviewedAt,
		Rating:     *reqData.Rating,
		Review:     reqData.Review,
		IsDeleted:  false,
	}

	result, err := database.Reviews().InsertOne(ctx, review)
	if err != nil {
		log.Printf("Error saving review to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}
	review.ID = result.InsertedID.(primitive.ObjectID)

	// Delta update only, never read-modify-write the counter
	if _, err := database.Books().UpdateOne(ctx,
		bson.M{"_id": bookObjID, "isDeleted": false},
		bson.M{"$inc": bson.M{"reviews": 1}},
	); err != nil {
		log.Printf("Error incrementing review count for book %s: %v", bookObjID.Hex(), err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "review created successfully", review)
}

// UpdateReview changes a review's rating, text or reviewer name.
// PUT /books/:bookId/review/:reviewId
func UpdateReview(c *fiber.Ctx) error {
	bookObjID, _ := primitive.ObjectIDFromHex(c.Params("bookId"))
	reviewObjID, _ := primitive.ObjectIDFromHex(c.Params("reviewId"))

	reqData := new(struct {
		Rating     *int    `json:"rating"`
		Review     *string `json:"review"`
		ReviewedBy *string `json:"reviewedBy"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	ctx := c.Context()

	if err := database.Books().FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	var existing models.Review
	if err := database.Reviews().FindOne(ctx, bson.M{"_id": reviewObjID, "bookId": bookObjID, "isDeleted": false}).Decode(&existing); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "review not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	update := bson.M{}
	if reqData.Rating != nil {
		update["rating"] = *reqData.Rating
	}
	if reqData.Review != nil {
		update["review"] = *reqData.Review
	}
	if reqData.ReviewedBy != nil {
		update["reviewedBy"] = *reqData.ReviewedBy
	}

	// Nothing recognized in the payload, return the record as is
	if len(update) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "review updated successfully", existing)
	}

	var updated models.Review
	err := database.Reviews().FindOneAndUpdate(ctx,
		bson.M{"_id": reviewObjID, "bookId": bookObjID, "isDeleted": false},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "review not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "review updated successfully", updated)
}

// DeleteReview soft-deletes a review and decrements the book's counter.
// DELETE /books/:bookId/review/:reviewId
func DeleteReview(c *fiber.Ctx) error {
	bookObjID, _ := primitive.ObjectIDFromHex(c.Params("bookId"))
	reviewObjID, _ := primitive.ObjectIDFromHex(c.Params("reviewId"))

	ctx := c.Context()

	if err := database.Reviews().FindOne(ctx, bson.M{"_id": reviewObjID, "bookId": bookObjID, "isDeleted": false}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "review not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if err := database.Books().FindOne(ctx, bson.M{"_id": bookObjID, "isDeleted": false}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "book not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	var deleted models.Review
	err := database.Reviews().FindOneAndUpdate(ctx,
		bson.M{"_id": reviewObjID, "bookId": bookObjID, "isDeleted": false},
		bson.M{"$set": bson.M{"isDeleted": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&deleted)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "review not found", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, err.Error(), nil)
	}

	if _, err := database.Books().UpdateOne(ctx,
		bson.M{"_id": bookObjID, "isDeleted": false},
		bson.M{"$inc": bson.M{"reviews": -1}},
	); err != nil {
		log.Printf("Error decrementing review count for book %s: %v", bookObjID.Hex(), err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "review deleted successfully", deleted)
}
