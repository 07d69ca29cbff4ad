package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"organic-marketplace/internal/models"
)

// GetUser logs absent lookups before returning ErrNotFound; driver failures
// propagate wrapped.
func (m *Mongo) GetUser(ctx context.Context, id string) (*models.User, error) {
	objID, err := oid(id)
	if err != nil {
		m.log.WithField("id", id).Warn("invalid user id")
		return nil, err
	}
	var user models.User
	if err := m.db.Collection("users").FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			m.log.WithField("id", id).Info("no user found")
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

func (m *Mongo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := m.db.Collection("users").FindOne(ctx, bson.M{"username": username}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			m.log.WithField("username", username).Info("no user found")
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

func (m *Mongo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := m.db.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &user, nil
}

func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return m.insert(ctx, "users", user)
}

func (m *Mongo) UpdateUser(ctx context.Context, id string, fields Fields) (*models.User, error) {
	if len(fields) == 0 {
		return m.GetUser(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var user models.User
	err = m.db.Collection("users").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return &user, nil
}

func (m *Mongo) DeleteUser(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "users", id)
}

func (m *Mongo) GetAllUsers(ctx context.Context) ([]models.User, error) {
	cur, err := m.db.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}

func (m *Mongo) GetUsersByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	cur, err := m.db.Collection("users").Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
