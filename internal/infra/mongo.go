package infra

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo connects to the document store named by the config. A missing or
// unreachable database is not fatal: the server still comes up and every
// data-dependent route reports the store as unconfigured.
func InitMongo(cfg *Config) *mongo.Database {
	if cfg.DatabaseURL == "" || cfg.DatabaseName == "" {
		log.Println("DATABASE_URL or DATABASE_NAME not set, running without a database")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		return nil
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Printf("Error pinging database: %v", err)
		return nil
	}

	log.Println("Connected to MongoDB successfully")
	return client.Database(cfg.DatabaseName)
}

func CloseMongo(db *mongo.Database) {
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("MongoDB connection closed successfully")
	}
}
