package repository

import (
	"context"
	"fmt"

	"aronia-backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoOrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates an order repository backed by the given
// database. A nil database is allowed; Create then returns
// ErrStoreNotConfigured.
func NewOrderRepository(db *mongo.Database) OrderRepository {
	r := &MongoOrderRepository{}
	if db != nil {
		r.collection = db.Collection(orderCollection)
	}
	return r
}

func (r *MongoOrderRepository) Create(ctx context.Context, order *models.Order) (string, error) {
	if r.collection == nil {
		return "", ErrStoreNotConfigured
	}

	res, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Sprintf("%v", res.InsertedID), nil
	}
	return oid.Hex(), nil
}
