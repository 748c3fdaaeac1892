package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/pricing"
	"lovilike-backoffice/repository"
)

// PersonalizationController handles HTTP requests for personalization pricing
type PersonalizationController struct {
	calculator *pricing.Calculator
	rules      repository.PricingRuleRepositoryInterface
	products   repository.ProductRepositoryInterface
}

// NewPersonalizationController creates a new PersonalizationController
func NewPersonalizationController(
	calculator *pricing.Calculator,
	rules repository.PricingRuleRepositoryInterface,
	products repository.ProductRepositoryInterface,
) *PersonalizationController {
	return &PersonalizationController{
		calculator: calculator,
		rules:      rules,
		products:   products,
	}
}

// Price handles POST /personalization/price
// Example request:
// {
//   "productId": "c1f0...",
//   "quantity": 10,
//   "sides": ["side-front"],
//   "areas": [{"areaId": "area-escudo"}]
// }
// Example response:
// {
//   "basePrice": 1000,
//   "perAreaSurcharges": [{"area": "Escudo pecho", "amount": 200}],
//   "quantitySubtotal": 12000,
//   "discountApplied": {"ruleId": "...", "amount": 180},
//   "finalUnitPrice": 1020,
//   "finalTotal": 10200
// }
func (c *PersonalizationController) Price(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Price: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ Price: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Price: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	breakdown, err := c.calculator.Calculate(ctx, &req)
	if err != nil {
		log.Printf("❌ Price: Error calculating price: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ Price: product=%s quantity=%d finalTotal=%d", req.ProductID, req.Quantity, breakdown.FinalTotal)
	writeJSON(w, http.StatusOK, breakdown)
}

// QuantityDiscounts handles GET /products/:id/quantity-discounts
// Returns the product's discount tiers ordered by minQuantity ascending.
func (c *PersonalizationController) QuantityDiscounts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 QuantityDiscounts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		log.Printf("❌ QuantityDiscounts: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, "/products/")
	productID := strings.TrimSuffix(path, "/quantity-discounts")
	if productID == "" || strings.Contains(productID, "/") {
		writeError(w, apperrors.NewInvalidRequest("product id is required"))
		return
	}

	ctx := context.Background()

	// Missing products report 404 rather than an empty list
	if _, err := c.products.GetByID(ctx, productID); err != nil {
		log.Printf("❌ QuantityDiscounts: Product lookup failed: %v", err)
		writeError(w, err)
		return
	}

	discounts, err := c.rules.GetQuantityDiscounts(ctx, productID)
	if err != nil {
		log.Printf("❌ QuantityDiscounts: Error fetching discounts: %v", err)
		writeError(w, err)
		return
	}
	if discounts == nil {
		discounts = []models.QuantityDiscountRule{}
	}

	log.Printf("✅ QuantityDiscounts: product=%s tiers=%d", productID, len(discounts))
	writeJSON(w, http.StatusOK, models.QuantityDiscountListResponse{Discounts: discounts})
}
