package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// PricingRuleController handles HTTP requests for pricing rule sets
type PricingRuleController struct {
	repository repository.PricingRuleRepositoryInterface
}

// NewPricingRuleController creates a new PricingRuleController
func NewPricingRuleController(repo repository.PricingRuleRepositoryInterface) *PricingRuleController {
	return &PricingRuleController{
		repository: repo,
	}
}

// Create handles POST /admin/products/:id/pricing-rule-sets
// Example request:
// {
//   "name": "Tarifa base",
//   "items": [
//     {"type": "AREA", "printAreaId": "area-escudo", "price": 200}
//   ],
//   "quantityDiscounts": [
//     {"minQuantity": 5, "discountType": "PERCENTAGE", "discountValue": 10},
//     {"minQuantity": 10, "discountType": "PERCENTAGE", "discountValue": 15}
//   ]
// }
// Duplicate minQuantity tiers within the set are rejected.
func (c *PricingRuleController) Create(w http.ResponseWriter, r *http.Request, productID string) {
	log.Printf("📥 CreatePricingRuleSet: Received %s request to %s", r.Method, r.URL.Path)

	var req models.PricingRuleSet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreatePricingRuleSet: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}
	req.ProductID = productID

	ctx := context.Background()
	ruleSet, err := c.repository.CreateRuleSet(ctx, &req)
	if err != nil {
		log.Printf("❌ CreatePricingRuleSet: Error creating rule set: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreatePricingRuleSet: Successfully created rule set id=%s product=%s", ruleSet.ID, productID)
	writeJSON(w, http.StatusCreated, ruleSet)
}

// ListByProduct handles GET /admin/products/:id/pricing-rule-sets
func (c *PricingRuleController) ListByProduct(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := context.Background()
	ruleSets, err := c.repository.ListByProduct(ctx, productID)
	if err != nil {
		log.Printf("❌ ListPricingRuleSets: Error fetching rule sets for product %s: %v", productID, err)
		writeError(w, err)
		return
	}
	if ruleSets == nil {
		ruleSets = []models.PricingRuleSet{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"ruleSets": ruleSets})
}

// Delete handles DELETE /admin/pricing-rule-sets/:id
// Deactivates the rule set; historical orders keep their prices.
func (c *PricingRuleController) Delete(w http.ResponseWriter, r *http.Request, ruleSetID string) {
	log.Printf("📥 DeletePricingRuleSet: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()
	if err := c.repository.Delete(ctx, ruleSetID); err != nil {
		log.Printf("❌ DeletePricingRuleSet: Error deleting rule set %s: %v", ruleSetID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ DeletePricingRuleSet: Successfully deactivated rule set id=%s", ruleSetID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated", "id": ruleSetID})
}
