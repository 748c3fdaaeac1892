package models

import (
	"encoding/json"
	"fmt"
)

// Discount type constants
const (
	DiscountTypeFixed      = "FIXED"
	DiscountTypePercentage = "PERCENTAGE"
)

// PricingRuleSet groups the personalization surcharges and quantity discount
// tiers configured for one product. A product may carry several active sets.
type PricingRuleSet struct {
	ID                string                 `json:"id"`
	ProductID         string                 `json:"productId"`
	Name              string                 `json:"name"`
	Description       string                 `json:"description,omitempty"`
	IsActive          bool                   `json:"isActive"`
	Items             []PricingRuleItem      `json:"items"`
	QuantityDiscounts []QuantityDiscountRule `json:"quantityDiscounts"`
	CreatedAt         string                 `json:"createdAt"`
}

// PricingRuleItem is a flat surcharge attached to a side or a print area.
// Type is "SIDE" or "AREA"; exactly one of SideID/PrintAreaID is set.
type PricingRuleItem struct {
	ID          string `json:"id"`
	RuleSetID   string `json:"ruleSetId"`
	Type        string `json:"type"`
	SideID      string `json:"sideId,omitempty"`
	PrintAreaID string `json:"printAreaId,omitempty"`
	Price       int64  `json:"price"` // surcharge in euro cents
}

// QuantityDiscountRule is a monotonic threshold tier: the applicable rule for a
// quantity is the one with the greatest MinQuantity still <= quantity.
type QuantityDiscountRule struct {
	ID              string `json:"id"`
	RuleSetID       string `json:"ruleSetId,omitempty"`
	MinQuantity     int    `json:"minQuantity"`
	DiscountType    string `json:"discountType"` // FIXED or PERCENTAGE
	DiscountValue   int64  `json:"discountValue"`
	RuleName        string `json:"ruleName,omitempty"`
	RuleDescription string `json:"ruleDescription,omitempty"`
}

// QuantityDiscountListResponse wraps the discount tiers of a product, ordered
// by minQuantity ascending.
type QuantityDiscountListResponse struct {
	Discounts []QuantityDiscountRule `json:"discounts"`
}

// AreaOptions carries optional per-area choices made in the editor.
type AreaOptions struct {
	PrintingMethod string `json:"printingMethod,omitempty"`
}

// AreaSelection identifies one requested print area plus its options. The wire
// format accepts either a bare area id string or {"areaId": ..., "options": ...}
// so older editor clients keep working.
type AreaSelection struct {
	AreaID  string       `json:"areaId"`
	Options *AreaOptions `json:"options,omitempty"`
}

// UnmarshalJSON accepts both "area-id" and {"areaId": "area-id", ...}.
func (a *AreaSelection) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		a.AreaID = s
		a.Options = nil
		return nil
	}

	type alias AreaSelection
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("area selection must be a string or an object with areaId: %w", err)
	}
	*a = AreaSelection(obj)
	return nil
}

// PriceRequest represents the request body for POST /personalization/price
// Example: {
//   "productId": "c1f0...",
//   "quantity": 10,
//   "sides": ["side-front"],
//   "areas": [{"areaId": "area-escudo"}, "area-nombre"]
// }
type PriceRequest struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Sides     []string        `json:"sides"`
	Areas     []AreaSelection `json:"areas"`
}

// AreaSurcharge is one per-area (or per-side) line of the price breakdown.
type AreaSurcharge struct {
	Area   string `json:"area"`
	Amount int64  `json:"amount"`
}

// AppliedDiscount records which quantity discount tier was applied and the
// per-unit amount it removed.
type AppliedDiscount struct {
	RuleID string `json:"ruleId"`
	Amount int64  `json:"amount"`
}

// PriceBreakdown is the itemized result of a personalization price calculation.
// It is derived, never persisted.
type PriceBreakdown struct {
	BasePrice         int64            `json:"basePrice"`
	PerAreaSurcharges []AreaSurcharge  `json:"perAreaSurcharges"`
	QuantitySubtotal  int64            `json:"quantitySubtotal"` // unitPrice * quantity before discount
	DiscountApplied   *AppliedDiscount `json:"discountApplied"`
	FinalUnitPrice    int64            `json:"finalUnitPrice"`
	FinalTotal        int64            `json:"finalTotal"`
}
