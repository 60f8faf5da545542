package services

import (
	"context"

	"aronia-backend/models"
	"aronia-backend/repository"

	"go.uber.org/zap"
)

// CatalogService defines the product listing business logic.
type CatalogService interface {
	ListProducts(ctx context.Context) []models.Product
}

type catalogServiceImpl struct {
	repo   repository.ProductRepository
	logger *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repository.ProductRepository, logger *zap.Logger) CatalogService {
	return &catalogServiceImpl{repo: repo, logger: logger}
}

// ListProducts returns the catalog, seeding a default product when the
// collection is observed empty. The listing never fails: a store error is
// downgraded to an empty result and the caller still gets the seeded
// default.
func (s *catalogServiceImpl) ListProducts(ctx context.Context) []models.Product {
	docs, err := s.repo.FindAll(ctx)
	if err != nil {
		if repository.IsUnavailable(err) {
			s.logger.Warn("Product store unavailable, treating catalog as empty", zap.Error(err))
		} else {
			s.logger.Error("Product query failed, treating catalog as empty", zap.Error(err))
		}
		docs = nil
	}

	if len(docs) == 0 {
		return []models.Product{s.seedDefault(ctx)}
	}

	products := make([]models.Product, 0, len(docs))
	for _, doc := range docs {
		products = append(products, models.ProductFromDocument(doc))
	}
	return products
}

// seedDefault persists the default product and returns it. The record is
// returned even when the insert fails, so an empty or unreachable store
// still yields a non-empty catalog.
func (s *catalogServiceImpl) seedDefault(ctx context.Context) models.Product {
	def := models.DefaultProduct()
	if err := s.repo.Create(ctx, &def); err != nil {
		if repository.IsUnavailable(err) {
			s.logger.Warn("Store unavailable, default product not persisted", zap.Error(err))
		} else {
			s.logger.Error("Failed to persist default product", zap.Error(err))
		}
	} else {
		s.logger.Info("Seeded default product", zap.String("sku", models.DefaultProductSKU))
	}
	return def
}
