package database

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"organic-marketplace/internal/config"
)

// Connect dials the document store with a bounded linear retry: a fixed delay
// between attempts, no backoff, no jitter. Exhausting the attempts returns the
// last error; the caller decides to terminate.
func Connect(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*mongo.Client, error) {
	var lastErr error
	for attempt := 1; attempt <= cfg.ConnectAttempts; attempt++ {
		log.WithField("attempt", attempt).Info("connecting to mongodb")

		dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		client, err := mongo.Connect(dialCtx, options.Client().
			ApplyURI(cfg.MongoURL).
			SetServerSelectionTimeout(5*time.Second))
		if err == nil {
			err = client.Ping(dialCtx, nil)
		}
		cancel()

		if err == nil {
			log.Info("connected to mongodb")
			return client, nil
		}

		lastErr = err
		log.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"max":     cfg.ConnectAttempts,
		}).Warn("mongodb connection failed")

		if attempt < cfg.ConnectAttempts {
			select {
			case <-time.After(cfg.ConnectDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, fmt.Errorf("connect mongodb after %d attempts: %w", cfg.ConnectAttempts, lastErr)
}

// EnsureIndexes creates the unique indexes backing the write-time uniqueness
// invariants (insert-or-fail instead of check-then-write) and the session TTL
// index. Safe to call on every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		"categories": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"brands": {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
		},
		"carts": {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
		"wishlists": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "productId", Value: 1}}, Options: unique},
		},
		"sellers": {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		},
		"sessions": {
			{Keys: bson.D{{Key: "expiresAt", Value: 1}}, Options: options.Index().SetExpireAfterSeconds(0)},
		},
		"cartitems": {
			{Keys: bson.D{{Key: "cartId", Value: 1}}},
		},
		"orderitems": {
			{Keys: bson.D{{Key: "orderId", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
