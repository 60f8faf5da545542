package services_test

import (
	"context"
	"errors"
	"testing"

	"aronia-backend/models"
	"aronia-backend/repository"
	"aronia-backend/services"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockProductRepository serves canned documents and records seed inserts.
type mockProductRepository struct {
	docs      []map[string]interface{}
	findErr   error
	createErr error
	created   []*models.Product
}

func (m *mockProductRepository) FindAll(_ context.Context) ([]map[string]interface{}, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.docs, nil
}

func (m *mockProductRepository) Create(_ context.Context, product *models.Product) error {
	m.created = append(m.created, product)
	return m.createErr
}

func TestListProducts_EmptyStoreSeedsDefault(t *testing.T) {
	repo := &mockProductRepository{}
	svc := services.NewCatalogService(repo, zap.NewNop())

	products := svc.ListProducts(context.Background())

	if assert.Len(t, products, 1) {
		p := products[0]
		if assert.NotNil(t, p.SKU) {
			assert.Equal(t, "ARONIA-750ML", *p.SKU)
		}
		assert.Equal(t, 12.90, p.Price)
		assert.Equal(t, 750, p.VolumeML)
		assert.True(t, p.InStock)
	}
	assert.Len(t, repo.created, 1, "default product should be persisted once")
}

func TestListProducts_QueryFailureStillReturnsDefault(t *testing.T) {
	repo := &mockProductRepository{findErr: errors.New("server selection timeout")}
	svc := services.NewCatalogService(repo, zap.NewNop())

	products := svc.ListProducts(context.Background())

	if assert.Len(t, products, 1) {
		assert.Equal(t, "ARONIA-750ML", *products[0].SKU)
	}
}

func TestListProducts_SeedInsertFailureStillReturnsDefault(t *testing.T) {
	repo := &mockProductRepository{createErr: repository.ErrStoreNotConfigured}
	svc := services.NewCatalogService(repo, zap.NewNop())

	products := svc.ListProducts(context.Background())

	if assert.Len(t, products, 1) {
		assert.Equal(t, 12.90, products[0].Price)
	}
}

func TestListProducts_NonEmptyStoreNormalizesWithoutSeeding(t *testing.T) {
	repo := &mockProductRepository{
		docs: []map[string]interface{}{
			{
				"title":     "Aronia Pure - 100% Chokeberry Juice",
				"price":     12.90,
				"category":  "Beverages",
				"in_stock":  true,
				"sku":       "ARONIA-750ML",
				"volume_ml": int32(750),
			},
			{
				// sparse document: defaults must apply
				"title": "Aronia Sampler",
			},
		},
	}
	svc := services.NewCatalogService(repo, zap.NewNop())

	products := svc.ListProducts(context.Background())

	if assert.Len(t, products, 2) {
		assert.Equal(t, 12.90, products[0].Price)
		assert.Equal(t, 750, products[0].VolumeML)

		assert.Equal(t, "Aronia Sampler", products[1].Title)
		assert.Equal(t, 0.0, products[1].Price)
		assert.True(t, products[1].InStock)
		assert.Equal(t, 750, products[1].VolumeML)
		assert.Nil(t, products[1].SKU)
	}
	assert.Empty(t, repo.created, "no seeding on a non-empty catalog")
}
