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

func (m *Mongo) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := m.db.Collection("orders").FindOne(ctx, bson.M{"_id": objID}).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return &order, nil
}

func (m *Mongo) CreateOrder(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	if order.Status == "" {
		order.Status = models.OrderPending
	}
	return m.insert(ctx, "orders", order)
}

func (m *Mongo) UpdateOrder(ctx context.Context, id string, fields Fields) (*models.Order, error) {
	if len(fields) == 0 {
		return m.GetOrder(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var order models.Order
	err = m.db.Collection("orders").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order: %w", err)
	}
	return &order, nil
}

func (m *Mongo) DeleteOrder(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "orders", id)
}

func (m *Mongo) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{})
}

func (m *Mongo) GetOrdersByBuyer(ctx context.Context, buyerID string) ([]models.Order, error) {
	objID, err := oid(buyerID)
	if err != nil {
		return nil, err
	}
	return m.findOrders(ctx, bson.M{"buyerId": objID})
}

func (m *Mongo) GetOrdersByStatus(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	return m.findOrders(ctx, bson.M{"status": status})
}

func (m *Mongo) findOrders(ctx context.Context, filter bson.M) ([]models.Order, error) {
	cur, err := m.db.Collection("orders").Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (m *Mongo) GetOrderItem(ctx context.Context, id string) (*models.OrderItem, error) {
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var item models.OrderItem
	if err := m.db.Collection("orderitems").FindOne(ctx, bson.M{"_id": objID}).Decode(&item); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &item, nil
}

func (m *Mongo) CreateOrderItem(ctx context.Context, item *models.OrderItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	return m.insert(ctx, "orderitems", item)
}

func (m *Mongo) UpdateOrderItem(ctx context.Context, id string, fields Fields) (*models.OrderItem, error) {
	if len(fields) == 0 {
		return m.GetOrderItem(ctx, id)
	}
	objID, err := oid(id)
	if err != nil {
		return nil, err
	}
	var item models.OrderItem
	err = m.db.Collection("orderitems").
		FindOneAndUpdate(ctx, bson.M{"_id": objID}, setDoc(fields), after()).
		Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update order item: %w", err)
	}
	return &item, nil
}

func (m *Mongo) DeleteOrderItem(ctx context.Context, id string) error {
	return m.deleteByID(ctx, "orderitems", id)
}

func (m *Mongo) GetOrderItemsByOrder(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	objID, err := oid(orderID)
	if err != nil {
		return nil, err
	}
	cur, err := m.db.Collection("orderitems").Find(ctx, bson.M{"orderId": objID})
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	var items []models.OrderItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return items, nil
}
