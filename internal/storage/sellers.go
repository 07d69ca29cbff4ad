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

func (m *Mongo) GetSeller(ctx context.Context, id string) (*models.Seller, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var seller models.Seller
	if err := m.db.Collection("sellers").FindOne(ctx, bson.M{"_id": objID}).Decode(&seller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &seller, nil
}

func (m *Mongo) GetSellerByUser(ctx context.Context, userID string) (*models.Seller, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	var seller models.Seller
	if err := m.db.Collection("sellers").FindOne(ctx, bson.M{"userId": objID}).Decode(&seller); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get seller by user: %w", err)
	}
	return &seller, nil
}

func (m *Mongo) CreateSeller(ctx context.Context, seller *models.Seller) error {
	if seller.ID.IsZero() {
		seller.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if seller.CreatedAt.IsZero() {
		seller.CreatedAt = now
	}
	if seller.UpdatedAt.IsZero() {
		seller.UpdatedAt = now
	}
	if seller.Status == "" {
		seller.Status = models.SellerPending
	}
	return m.insert(ctx, "sellers", seller)
}

func (m *Mongo) UpdateSeller(ctx context.Context, id string, fields Fields) (*models.Seller, error) {
	if len(fields) == 0 {
		return m.GetSeller(ctx, id)
	}
	fields["updatedAt"] = time.Now().UTC()
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var seller models.Seller
	err = m.db.Collection("sellers").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&seller)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update seller: %w", err)
	}
	return &seller, nil
}

func (m *Mongo) GetAllSellers(ctx context.Context) ([]models.Seller, error) {
	return m.findSellers(ctx, bson.M{})
}

func (m *Mongo) GetSellersByStatus(ctx context.Context, status models.SellerStatus) ([]models.Seller, error) {
	return m.findSellers(ctx, bson.M{"status": status})
}

func (m *Mongo) findSellers(ctx context.Context, filter bson.M) ([]models.Seller, error) {
	cur, err := m.db.Collection("sellers").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	var sellers []models.Seller
	if err := cur.All(ctx, &sellers); err != nil {
		return nil, fmt.Errorf("decode sellers: %w", err)
	}
	return sellers, nil
}
