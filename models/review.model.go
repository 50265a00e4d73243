package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Review struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	BookID     primitive.ObjectID `bson:"bookId" json:"bookId"`
	ReviewedBy string             `bson:"reviewedBy" json:"reviewedBy"` // defaults to "Guest"
	ReviewedAt time.Time          `bson:"reviewedAt" json:"reviewedAt"`
	Rating     int                `bson:"rating" json:"rating"` // 1 to 5
	Review     string             `bson:"review,omitempty" json:"review,omitempty"`
	IsDeleted  bool               `bson:"isDeleted" json:"isDeleted"`
}
