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

func (m *Mongo) GetWishlist(ctx context.Context, id string) (*models.Wishlist, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var wishlist models.Wishlist
	if err := m.db.Collection("wishlists").FindOne(ctx, bson.M{"_id": objID}).Decode(&wishlist); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get wishlist: %w", err)
	}
	return &wishlist, nil
}

// CreateWishlist relies on the compound unique index over (userId, productId);
// a duplicate pair comes back as ErrDuplicate.
func (m *Mongo) CreateWishlist(ctx context.Context, wishlist *models.Wishlist) error {
	if wishlist.ID.IsZero() {
		wishlist.ID = primitive.NewObjectID()
	}
	if wishlist.CreatedAt.IsZero() {
		wishlist.CreatedAt = time.Now().UTC()
	}
	return m.insert(ctx, "wishlists", wishlist)
}

func (m *Mongo) DeleteWishlist(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "wishlists", id)
}

func (m *Mongo) GetWishlistsByUser(ctx context.Context, userID string) ([]models.Wishlist, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	cur, err := m.db.Collection("wishlists").Find(ctx, bson.M{"userId": objID})
	if err != nil {
		return nil, fmt.Errorf("list wishlists: %w", err)
	}
	var wishlists []models.Wishlist
	if err := cur.All(ctx, &wishlists); err != nil {
		return nil, fmt.Errorf("decode wishlists: %w", err)
	}
	return wishlists, nil
}

func (m *Mongo) DeleteWishlistByUserAndProduct(ctx context.Context, userID, productID string) error {
	userOID, err := oid(userID)
	if err != nil {
		return err
	}
	productOID, err := oid(productID)
	if err != nil {
		return err
	}
	res, err := m.db.Collection("wishlists").
		DeleteOne(ctx, bson.M{"userId": userOID, "productId": productOID})
	if err != nil {
		return fmt.Errorf("delete wishlist entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
