package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"organic-marketplace/internal/models"
)

func (m *Mongo) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := m.db.Collection("products").FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &product, nil
}

func (m *Mongo) CreateProduct(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "products", product)
}

func (m *Mongo) UpdateProduct(ctx context.Context, id string, fields Fields) (*models.Product, error) {
	if len(fields) == 0 {
		return m.GetProduct(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var product models.Product
	err = m.db.Collection("products").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return &product, nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "products", id)
}

func (m *Mongo) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return m.findProducts(ctx, bson.M{})
}

func (m *Mongo) GetProductsByCategory(ctx context.Context, categoryID string) ([]models.Product, error) {
	objID, err := oid(categoryID)
	if err != nil {
		return nil, err
	}
	return m.findProducts(ctx, bson.M{"categoryId": objID})
}

func (m *Mongo) GetProductsByBrand(ctx context.Context, brandID string) ([]models.Product, error) {
	objID, err := oid(brandID)
	if err != nil {
		return nil, err
	}
	return m.findProducts(ctx, bson.M{"brandId": objID})
}

func (m *Mongo) GetProductsBySeller(ctx context.Context, sellerID string) ([]models.Product, error) {
	objID, err := oid(sellerID)
	if err != nil {
		return nil, err
	}
	return m.findProducts(ctx, bson.M{"sellerId": objID})
}

// AdjustProductStock applies a single atomic $inc; negative deltas are the
// order-placement path.
func (m *Mongo) AdjustProductStock(ctx context.Context, id string, delta int) error {
	objID, err := oid(id)
	if err != nil {
		return err
	}
	res, err := m.db.Collection("products").
		UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"stock": delta}})
	if err != nil {
		return fmt.Errorf("adjust product stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) findProducts(ctx context.Context, filter bson.M) ([]models.Product, error) {
	cur, err := m.db.Collection("products").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}
