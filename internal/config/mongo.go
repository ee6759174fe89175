package config

import (
	"context"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient and MongoDB hold the connection to the post document store.
var MongoClient *mongo.Client
var MongoDB *mongo.Database

// InitMongo connects to MongoDB, where post aggregates live.
func InitMongo() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(os.Getenv("MONGO_URI")).
		SetMaxPoolSize(100).
		SetMinPoolSize(10).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		Logger.Fatal("Error connecting to MongoDB: " + err.Error())
	}

	if err := client.Ping(ctx, nil); err != nil {
		Logger.Fatal("Error pinging MongoDB: " + err.Error())
	}

	MongoClient = client
	MongoDB = client.Database(os.Getenv("MONGO_DB"))
	Logger.Info("✅ Connected to MongoDB")
}
