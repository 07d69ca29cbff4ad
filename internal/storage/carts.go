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

func (m *Mongo) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := m.db.Collection("carts").FindOne(ctx, bson.M{"_id": objID}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return &cart, nil
}

func (m *Mongo) GetCartByUser(ctx context.Context, userID string) (*models.Cart, error) {
	objID, err := oid(userID)
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := m.db.Collection("carts").FindOne(ctx, bson.M{"userId": objID}).Decode(&cart); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart by user: %w", err)
	}
	return &cart, nil
}

func (m *Mongo) CreateCart(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = time.Now().UTC()
	}
	return m.insert(ctx, "carts", cart)
}

func (m *Mongo) DeleteCart(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "carts", id)
}

func (m *Mongo) GetCartItem(ctx context.Context, id string) (*models.CartItem, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	if err := m.db.Collection("cartitems").FindOne(ctx, bson.M{"_id": objID}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart item: %w", err)
	}
	return &item, nil
}

func (m *Mongo) CreateCartItem(ctx context.Context, item *models.CartItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "cartitems", item)
}

func (m *Mongo) UpdateCartItem(ctx context.Context, id string, fields Fields) (*models.CartItem, error) {
	if len(fields) == 0 {
		return m.GetCartItem(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var item models.CartItem
	err = m.db.Collection("cartitems").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return &item, nil
}

func (m *Mongo) DeleteCartItem(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "cartitems", id)
}

func (m *Mongo) GetCartItemsByCart(ctx context.Context, cartID string) ([]models.CartItem, error) {
	objID, err := oid(cartID)
	if err != nil {
		return nil, err
	}
	cur, err := m.db.Collection("cartitems").Find(ctx, bson.M{"cartId": objID})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	var items []models.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode cart items: %w", err)
	}
	return items, nil
}
