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

func (m *Mongo) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var cat models.Category
	if err := m.db.Collection("categories").FindOne(ctx, bson.M{"_id": objID}).Decode(&cat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &cat, nil
}

func (m *Mongo) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := m.db.Collection("categories").FindOne(ctx, bson.M{"name": name}).Decode(&cat); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &cat, nil
}

func (m *Mongo) CreateCategory(ctx context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "categories", category)
}

func (m *Mongo) UpdateCategory(ctx context.Context, id string, fields Fields) (*models.Category, error) {
	if len(fields) == 0 {
		return m.GetCategory(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var cat models.Category
	err = m.db.Collection("categories").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&cat)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &cat, nil
}

func (m *Mongo) DeleteCategory(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "categories", id)
}

func (m *Mongo) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	cur, err := m.db.Collection("categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return cats, nil
}
