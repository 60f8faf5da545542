package models

// OrderItem is a single line of an order. Quantity and unit price bounds are
// enforced at bind time, before any business logic runs. UnitPrice must be
// present (an explicit 0 is accepted); Quantity may be omitted and then
// defaults to DefaultQuantity, but an explicit out-of-range value is rejected.
type OrderItem struct {
	ProductSKU string   `json:"product_sku" bson:"product_sku" binding:"required"`
	Title      string   `json:"title" bson:"title" binding:"required"`
	UnitPrice  *float64 `json:"unit_price" bson:"unit_price" binding:"required,gte=0"`
	Quantity   *int     `json:"quantity" bson:"quantity" binding:"omitempty,min=1,max=24"`
}

// DefaultQuantity is applied when a checkout item omits its quantity.
const DefaultQuantity = 1

// Order is the checkout submission. TotalAmount is computed server-side and
// is deliberately not bindable from the request body.
type Order struct {
	CustomerName    string      `json:"customer_name" bson:"customer_name" binding:"required"`
	CustomerEmail   string      `json:"customer_email" bson:"customer_email" binding:"required,email"`
	ShippingAddress string      `json:"shipping_address" bson:"shipping_address" binding:"required"`
	Items           []OrderItem `json:"items" bson:"items" binding:"required,dive"`
	Notes           *string     `json:"notes" bson:"notes,omitempty"`
	TotalAmount     float64     `json:"-" bson:"total_amount"`
}

// CheckoutResponse is returned for every accepted checkout. OrderID is nil
// when the store could not be reached; callers must treat that as accepted
// but not confirmed stored.
type CheckoutResponse struct {
	Status      string  `json:"status"`
	OrderID     *string `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}
