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

func (m *Mongo) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var brand models.Brand
	if err := m.db.Collection("brands").FindOne(ctx, bson.M{"_id": objID}).Decode(&brand); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return &brand, nil
}

func (m *Mongo) GetBrandByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	if err := m.db.Collection("brands").FindOne(ctx, bson.M{"name": name}).Decode(&brand); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get brand by name: %w", err)
	}
	return &brand, nil
}

func (m *Mongo) CreateBrand(ctx context.Context, brand *models.Brand) error {
	if brand.ID.IsZero() {
		brand.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "brands", brand)
}

func (m *Mongo) UpdateBrand(ctx context.Context, id string, fields Fields) (*models.Brand, error) {
	if len(fields) == 0 {
		return m.GetBrand(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var brand models.Brand
	err = m.db.Collection("brands").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&brand)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return &brand, nil
}

func (m *Mongo) DeleteBrand(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "brands", id)
}

func (m *Mongo) GetAllBrands(ctx context.Context) ([]models.Brand, error) {
	cur, err := m.db.Collection("brands").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	var brands []models.Brand
	if err := cur.All(ctx, &brands); err != nil {
		return nil, fmt.Errorf("decode brands: %w", err)
	}
	return brands, nil
}
