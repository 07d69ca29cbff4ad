package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"organic-marketplace/internal/models"
)

func (m *Mongo) CreateSession(ctx context.Context, session *models.Session) error {
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}
	return m.insert(ctx, "sessions", session)
}

// GetSession filters on expiry as well as token: the TTL monitor removes
// expired documents eventually, not immediately.
func (m *Mongo) GetSession(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	filter := bson.M{"_id": token, "expiresAt": bson.M{"$gt": time.Now().UTC()}}
	if err := m.db.Collection("sessions").FindOne(ctx, filter).Decode(&session); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

func (m *Mongo) DeleteSession(ctx context.Context, token string) error {
	res, err := m.db.Collection("sessions").DeleteOne(ctx, bson.M{"_id": token})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
