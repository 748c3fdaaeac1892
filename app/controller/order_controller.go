package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/pricing"
	"lovilike-backoffice/repository"
)

// OrderController handles HTTP requests for personalization orders. Every
// order line is re-priced server side through the calculator; totals sent by
// the client are ignored.
type OrderController struct {
	repository    repository.OrderRepositoryInterface
	calculator    *pricing.Calculator
	discountCodes repository.DiscountCodeRepositoryInterface
	finance       repository.FinanceTransactionRepositoryInterface
}

// NewOrderController creates a new OrderController
func NewOrderController(
	repo repository.OrderRepositoryInterface,
	calculator *pricing.Calculator,
	discountCodes repository.DiscountCodeRepositoryInterface,
	finance repository.FinanceTransactionRepositoryInterface,
) *OrderController {
	return &OrderController{
		repository:    repo,
		calculator:    calculator,
		discountCodes: discountCodes,
		finance:       finance,
	}
}

// Create handles POST /admin/orders
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateOrder: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateOrder: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		writeError(w, apperrors.NewInvalidRequest("customerName is required"))
		return
	}
	if strings.TrimSpace(req.CustomerEmail) == "" {
		writeError(w, apperrors.NewInvalidRequest("customerEmail is required"))
		return
	}
	if len(req.Lines) == 0 {
		writeError(w, apperrors.NewInvalidRequest("order must have at least one line"))
		return
	}

	ctx := context.Background()

	order := &models.Order{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		Notes:         req.Notes,
	}

	for i, lineReq := range req.Lines {
		breakdown, err := c.calculator.Calculate(ctx, &models.PriceRequest{
			ProductID: lineReq.ProductID,
			Quantity:  lineReq.Quantity,
			Sides:     lineReq.Sides,
			Areas:     lineReq.Areas,
		})
		if err != nil {
			log.Printf("❌ CreateOrder: Error pricing line %d: %v", i, err)
			writeError(w, err)
			return
		}

		sidesJSON, err := json.Marshal(lineReq.Sides)
		if err != nil {
			writeError(w, fmt.Errorf("failed to encode sides: %w", err))
			return
		}
		areasJSON, err := json.Marshal(lineReq.Areas)
		if err != nil {
			writeError(w, fmt.Errorf("failed to encode areas: %w", err))
			return
		}

		order.Lines = append(order.Lines, models.OrderLine{
			ProductID:      lineReq.ProductID,
			Quantity:       lineReq.Quantity,
			SidesJSON:      string(sidesJSON),
			AreasJSON:      string(areasJSON),
			FinalUnitPrice: breakdown.FinalUnitPrice,
			LineTotal:      breakdown.FinalTotal,
			DesignPayload:  lineReq.DesignPayload,
		})
		order.Subtotal += breakdown.FinalTotal
	}

	// Apply discount code against the repriced subtotal
	var redeemedCodeID string
	if req.DiscountCode != "" {
		validation := validateCode(ctx, c.discountCodes, req.DiscountCode, order.Subtotal, time.Now())
		if !validation.Valid {
			log.Printf("❌ CreateOrder: Discount code rejected: %s", validation.Reason)
			writeError(w, apperrors.NewInvalidRequest("discount code %s: %s", validation.Code, validation.Reason))
			return
		}

		code, err := c.discountCodes.GetByCode(ctx, validation.Code)
		if err != nil {
			writeError(w, err)
			return
		}
		order.CodeDiscount = validation.DiscountAmount
		order.DiscountCodeID = code.ID
		redeemedCodeID = code.ID
	}
	order.Total = order.Subtotal - order.CodeDiscount

	created, err := c.repository.Create(ctx, order)
	if err != nil {
		log.Printf("❌ CreateOrder: Error creating order: %v", err)
		writeError(w, err)
		return
	}

	if redeemedCodeID != "" {
		if err := c.discountCodes.IncrementUsage(ctx, redeemedCodeID); err != nil {
			log.Printf("⚠️  CreateOrder: Failed to increment code usage for %s: %v", redeemedCodeID, err)
		}
	}

	log.Printf("✅ CreateOrder: Successfully created order id=%s total=%d", created.ID, created.Total)
	writeJSON(w, http.StatusCreated, created)
}

// List handles GET /admin/orders?status=pending
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	status := strings.TrimSpace(r.URL.Query().Get("status"))

	ctx := context.Background()
	orders, err := c.repository.List(ctx, status)
	if err != nil {
		log.Printf("❌ ListOrders: Error fetching orders: %v", err)
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	writeJSON(w, http.StatusOK, models.OrderListResponse{Orders: orders})
}

// Get handles GET /admin/orders/:id
func (c *OrderController) Get(w http.ResponseWriter, r *http.Request, orderID string) {
	ctx := context.Background()
	order, err := c.repository.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("❌ GetOrder: Error fetching order %s: %v", orderID, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// UpdateStatus handles PUT /admin/orders/:id/status
// Moving an order to paid records an income transaction for it.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	log.Printf("📥 UpdateOrderStatus: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateOrderStatus: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	order, err := c.repository.UpdateStatus(ctx, orderID, req.Status)
	if err != nil {
		log.Printf("❌ UpdateOrderStatus: Error updating order %s: %v", orderID, err)
		writeError(w, err)
		return
	}

	if order.Status == models.OrderStatusPaid && order.Total > 0 {
		_, err := c.finance.Create(ctx, &models.CreateFinanceTransactionRequest{
			Type:        "income",
			Source:      "order",
			SourceID:    order.ID,
			Amount:      order.Total,
			Destination: "store",
			Category:    "ventas",
			Notes:       fmt.Sprintf("Pedido %s de %s", order.ID, order.CustomerName),
		})
		if err != nil {
			log.Printf("⚠️  UpdateOrderStatus: Failed to record income for order %s: %v", order.ID, err)
		}
	}

	log.Printf("✅ UpdateOrderStatus: Order %s is now %s", order.ID, order.Status)
	writeJSON(w, http.StatusOK, order)
}
