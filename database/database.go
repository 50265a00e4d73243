package database

import (
	"context"
	"log"
	"time"

	"bookstore/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Client *mongo.Client
	Db     *mongo.Database
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to MongoDB
func ConnectDb() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(config.AppConfig.MongoURI).
		SetMaxPoolSize(10))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	db := client.Database(config.AppConfig.DBName)

	ensureIndexes(ctx, db)

	// Save database instance globally
	Database = DbInstance{Client: client, Db: db}
}

// ensureIndexes creates the unique indexes the handlers rely on
func ensureIndexes(ctx context.Context, db *mongo.Database) {
	log.Println("Ensuring indexes...")

	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	_, err = db.Collection("reviews").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookId", Value: 1}},
	})
	if err != nil {
		log.Fatalf("Failed to create review indexes: %v", err)
	}

	log.Println("Indexes ensured successfully.")
}

// Users returns the users collection
func Users() *mongo.Collection {
	return Database.Db.Collection("users")
}

// Books returns the books collection
func Books() *mongo.Collection {
	return Database.Db.Collection("books")
}

// Reviews returns the reviews collection
func Reviews() *mongo.Collection {
	return Database.Db.Collection("reviews")
}
