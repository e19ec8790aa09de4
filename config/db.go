package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB opens the process-wide MongoDB connection and verifies it with a
// ping. Callers own the returned client and must Disconnect it on shutdown.
func ConnectDB(cfg Config) (*mongo.Client, error) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s",
		url.QueryEscape(cfg.MongoUser), url.QueryEscape(cfg.MongoPass), cfg.MongoHost)

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.TODO(), clientOptions)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	log.Info().Str("host", cfg.MongoHost).Msg("connected to MongoDB")
	return client, nil
}
