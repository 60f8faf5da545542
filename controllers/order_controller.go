package controllers

import (
	"net/http"

	"aronia-backend/models"
	"aronia-backend/services"

	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests for order intake.
type OrderController struct {
	orderService services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(orderService services.OrderService) *OrderController {
	return &OrderController{orderService: orderService}
}

// CreateOrder handles POST /api/checkout. Shape violations (malformed email,
// quantity outside 1-24, negative unit price) fail at bind time; the empty
// item list is rejected by the service.
func (oc *OrderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": bindingErrorMessage(err)})
		return
	}

	resp, svcErr := oc.orderService.CreateOrder(ctx.Request.Context(), &order)
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
