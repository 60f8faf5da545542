package controllers

import (
	"net/http"

	"aronia-backend/services"

	"github.com/gin-gonic/gin"
)

// ProductController handles HTTP requests for the product catalog.
type ProductController struct {
	catalogService services.CatalogService
}

// NewProductController creates a new ProductController.
func NewProductController(catalogService services.CatalogService) *ProductController {
	return &ProductController{catalogService: catalogService}
}

// ListProducts handles GET /api/products. It always answers 200: an empty
// or unreachable store is degraded to the seeded default inside the service.
func (pc *ProductController) ListProducts(ctx *gin.Context) {
	products := pc.catalogService.ListProducts(ctx.Request.Context())
	ctx.JSON(http.StatusOK, products)
}
