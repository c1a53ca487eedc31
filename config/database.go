package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"medstore/store/mongostore"
)

const connectTimeout = 10 * time.Second

// ConnectDatabase connects to Mongo, pings it and makes sure the indexes the
// store relies on exist.
func ConnectDatabase(ctx context.Context, cfg *Config) (*mongo.Client, *mongostore.Store, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}

	st := mongostore.New(client.Database(cfg.MongoDatabase))
	if err := st.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}
	slog.Info("Connected to MongoDB", slog.String("database", cfg.MongoDatabase))
	return client, st, nil
}
