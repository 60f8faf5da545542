package repository

import (
	"context"

	"aronia-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names match the original deployment so the service can run
// against an existing database.
const (
	productCollection = "aroniaproduct"
	orderCollection   = "order"
)

type MongoProductRepository struct {
	collection *mongo.Collection
}

// NewProductRepository creates a product repository backed by the given
// database. A nil database is allowed; every operation then returns
// ErrStoreNotConfigured.
func NewProductRepository(db *mongo.Database) ProductRepository {
	r := &MongoProductRepository{}
	if db != nil {
		r.collection = db.Collection(productCollection)
	}
	return r
}

func (r *MongoProductRepository) FindAll(ctx context.Context) ([]map[string]interface{}, error) {
	if r.collection == nil {
		return nil, ErrStoreNotConfigured
	}

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(docs))
	for _, d := range docs {
		out = append(out, map[string]interface{}(d))
	}
	return out, nil
}

func (r *MongoProductRepository) Create(ctx context.Context, product *models.Product) error {
	if r.collection == nil {
		return ErrStoreNotConfigured
	}
	_, err := r.collection.InsertOne(ctx, product)
	return err
}
