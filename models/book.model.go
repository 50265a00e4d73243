package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Excerpt     string             `bson:"excerpt" json:"excerpt"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	ISBN        string             `bson:"ISBN" json:"ISBN"`
	Category    string             `bson:"category" json:"category"`
	Subcategory string             `bson:"subcategory" json:"subcategory"`
	Reviews     int                `bson:"reviews" json:"reviews"` // count of non-deleted reviews
	CoverURL    string             `bson:"coverUrl,omitempty" json:"coverUrl,omitempty"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	DeletedAt   *time.Time         `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	ReleasedAt  time.Time          `bson:"releasedAt" json:"releasedAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// BookWithReviews is the GET /books/:bookId response shape
type BookWithReviews struct {
	Book        `bson:",inline"`
	ReviewsData []Review `json:"reviewsData"`
}
