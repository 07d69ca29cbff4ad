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

func (m *Mongo) GetReview(ctx context.Context, id string) (*models.Review, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var review models.Review
	if err := m.db.Collection("reviews").FindOne(ctx, bson.M{"_id": objID}).Decode(&review); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get review: %w", err)
	}
	return &review, nil
}

func (m *Mongo) CreateReview(ctx context.Context, review *models.Review) error {
	if review.ID.IsZero() {
		review.ID = primitive.NewObjectID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}
	return m.insert(ctx, "reviews", review)
}

func (m *Mongo) UpdateReview(ctx context.Context, id string, fields Fields) (*models.Review, error) {
	if len(fields) == 0 {
		return m.GetReview(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var review models.Review
	err = m.db.Collection("reviews").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&review)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update review: %w", err)
	}
	return &review, nil
}

func (m *Mongo) DeleteReview(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "reviews", id)
}

func (m *Mongo) GetReviewsByProduct(ctx context.Context, productID string) ([]models.Review, error) {
	objID, err := oid(productID)
	if err != nil {
		return nil, err
	}
	return m.findReviews(ctx, bson.M{"productId": objID})
}

func (m *Mongo) GetReviewsByUser(ctx context.Context, userID string) ([]models.Review, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	return m.findReviews(ctx, bson.M{"userId": objID})
}

func (m *Mongo) findReviews(ctx context.Context, filter bson.M) ([]models.Review, error) {
	cur, err := m.db.Collection("reviews").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	var reviews []models.Review
	if err := cur.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}
	return reviews, nil
}
