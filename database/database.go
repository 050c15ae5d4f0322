package database

import (
	"context"
	"log"
	"time"

	"api/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client *mongo.Client

	// Users holds the signup/signin records
	Users *mongo.Collection
	// ImageSets holds the puzzle image set documents
	ImageSets *mongo.Collection
	// Tournaments holds the tournament documents. The collection is named
	// "admin" because the front-end was written against that name.
	Tournaments *mongo.Collection

	// Bucket is the GridFS bucket storing the puzzle image binaries
	Bucket *gridfs.Bucket
)

// InitDB connects to MongoDB and initializes the collections and the GridFS bucket
func InitDB() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	Client, err = mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		log.Fatal("failed to connect to MongoDB: ", err)
	}

	if err := Client.Ping(ctx, nil); err != nil {
		log.Fatal("failed to ping MongoDB: ", err)
	}

	db := Client.Database(config.MongoDatabase)
	Users = db.Collection("users")
	ImageSets = db.Collection("image_sets")
	Tournaments = db.Collection("admin")

	Bucket, err = gridfs.NewBucket(db)
	if err != nil {
		log.Fatal("failed to create GridFS bucket: ", err)
	}

	log.Println("Connected to MongoDB database: ", config.MongoDatabase)
}

// CloseDB disconnects the MongoDB client
func CloseDB() {
	if Client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := Client.Disconnect(ctx); err != nil {
		log.Println("Error while disconnecting from MongoDB: ", err)
	}
}
