package repository

import (
	"context"

	"aronia-backend/models"
)

// ProductRepository defines the catalog store operations. Reads return raw
// documents so shape normalization stays out of the storage layer.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]map[string]interface{}, error)
	Create(ctx context.Context, product *models.Product) error
}

// OrderRepository defines the order store operations. Create returns the
// store-assigned identifier.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (string, error)
}
