package models

// Order status constants
const (
	OrderStatusPending      = "pending"
	OrderStatusPaid         = "paid"
	OrderStatusInProduction = "in_production"
	OrderStatusShipped      = "shipped"
	OrderStatusDelivered    = "delivered"
	OrderStatusCancelled    = "cancelled"
)

// Order represents a personalization order
type Order struct {
	ID             string      `json:"id"`
	CustomerName   string      `json:"customerName"`
	CustomerEmail  string      `json:"customerEmail"`
	Status         string      `json:"status"`
	Subtotal       int64       `json:"subtotal"`       // sum of line totals before code discount
	CodeDiscount   int64       `json:"codeDiscount"`   // amount removed by a discount code
	Total          int64       `json:"total"`          // subtotal - codeDiscount
	DiscountCodeID string      `json:"discountCodeId,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	Lines          []OrderLine `json:"lines"`
	CreatedAt      string      `json:"createdAt"`
	UpdatedAt      string      `json:"updatedAt"`
}

// OrderLine is one priced line item of an order. The breakdown is recomputed
// server side when the order is created; client-supplied totals are ignored.
type OrderLine struct {
	ID             string `json:"id"`
	OrderID        string `json:"orderId"`
	ProductID      string `json:"productId"`
	Quantity       int    `json:"quantity"`
	SidesJSON      string `json:"-"` // requested side ids, stored as JSON
	AreasJSON      string `json:"-"` // requested area selections, stored as JSON
	FinalUnitPrice int64  `json:"finalUnitPrice"`
	LineTotal      int64  `json:"lineTotal"`
	DesignPayload  string `json:"designPayload,omitempty"` // opaque editor JSON for fulfillment
}

// CreateOrderRequest represents the request body for creating an order
// Example: {
//   "customerName": "Ana García",
//   "customerEmail": "ana@example.com",
//   "discountCode": "VERANO10",
//   "lines": [
//     {"productId": "...", "quantity": 10, "sides": ["s1"], "areas": ["a1"]}
//   ]
// }
type CreateOrderRequest struct {
	CustomerName  string                   `json:"customerName"`
	CustomerEmail string                   `json:"customerEmail"`
	DiscountCode  string                   `json:"discountCode,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
	Lines         []CreateOrderLineRequest `json:"lines"`
}

// CreateOrderLineRequest is one requested line: the personalization selection
// that will be priced through the calculator.
type CreateOrderLineRequest struct {
	ProductID     string          `json:"productId"`
	Quantity      int             `json:"quantity"`
	Sides         []string        `json:"sides"`
	Areas         []AreaSelection `json:"areas"`
	DesignPayload string          `json:"designPayload,omitempty"`
}

// UpdateOrderStatusRequest represents the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderListResponse wraps a list of orders (without lines, for listing)
type OrderListResponse struct {
	Orders []Order `json:"orders"`
}
