package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookstore/config"
	"bookstore/database"
	"bookstore/models"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REVIEW-RECONCILER %s] %s", time.Now().Format(time.RFC3339), message)
}

// ReconcileReviewCounts rewrites each live book's denormalized review counter
// from a live count of its non-deleted reviews. The request path only ever
// issues $inc deltas, so a crash between a review write and its counter
// update leaves drift for this job to repair.
func ReconcileReviewCounts() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	cursor, err := database.Books().Find(ctx, bson.M{"isDeleted": false})
	if err != nil {
		logScheduler("Error fetching books: " + err.Error())
		return
	}
	defer cursor.Close(ctx)

	corrected := 0
	for cursor.Next(ctx) {
		var book models.Book
		if err := cursor.Decode(&book); err != nil {
			logScheduler("Error decoding book: " + err.Error())
			continue
		}

		count, err := database.Reviews().CountDocuments(ctx, bson.M{"bookId": book.ID, "isDeleted": false})
		if err != nil {
			logScheduler("Error counting reviews for book " + book.ID.Hex() + ": " + err.Error())
			continue
		}

		if int(count) == book.Reviews {
			continue
		}

		_, err = database.Books().UpdateOne(ctx,
			bson.M{"_id": book.ID, "isDeleted": false},
			bson.M{"$set": bson.M{"reviews": int(count)}},
		)
		if err != nil {
			logScheduler("Error correcting counter for book " + book.ID.Hex() + ": " + err.Error())
			continue
		}
		corrected++
	}

	if corrected > 0 {
		logScheduler(fmt.Sprintf("Corrected review counters on %d book(s)", corrected))
	}
}

// InitializeReviewCountScheduler starts the counter reconciliation job. It
// returns nil when REVIEW_RECONCILE_CRON is empty or "off".
func InitializeReviewCountScheduler() *cron.Cron {
	spec := config.AppConfig.ReviewReconcileCron
	if spec == "" || spec == "off" {
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, ReconcileReviewCounts); err != nil {
		log.Fatalf("Invalid REVIEW_RECONCILE_CRON %q: %v", spec, err)
	}
	c.Start()

	logScheduler("Scheduled review counter reconciliation: " + spec)
	return c
}
