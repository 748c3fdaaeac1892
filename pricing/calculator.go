package pricing

import (
	"context"
	"fmt"
	"log"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// Calculator computes personalization prices from the product base price, the
// configured side/area surcharges and the quantity discount tiers. It holds no
// state beyond its repositories and is safe for concurrent use.
type Calculator struct {
	products repository.ProductRepositoryInterface
	areas    repository.PrintAreaRepositoryInterface
	rules    repository.PricingRuleRepositoryInterface
}

// NewCalculator creates a new pricing Calculator
func NewCalculator(
	products repository.ProductRepositoryInterface,
	areas repository.PrintAreaRepositoryInterface,
	rules repository.PricingRuleRepositoryInterface,
) *Calculator {
	return &Calculator{
		products: products,
		areas:    areas,
		rules:    rules,
	}
}

// Calculate produces the itemized price breakdown for one personalization
// request. Unit price is basePrice plus every selected side and area
// surcharge; the quantity discount tier is resolved against the requested
// quantity and applied per unit, floored at zero.
func (c *Calculator) Calculate(ctx context.Context, req *models.PriceRequest) (*models.PriceBreakdown, error) {
	if req.ProductID == "" {
		return nil, apperrors.NewInvalidRequest("productId is required")
	}
	if req.Quantity < 1 {
		return nil, apperrors.NewInvalidRequest("quantity must be at least 1")
	}

	product, err := c.products.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, &apperrors.ProductNotFoundError{ProductID: product.ID}
	}
	if !product.IsPersonalizable {
		return nil, apperrors.NewInvalidRequest("product is not personalizable: %s", product.ID)
	}

	log.Printf("💰 Calculate: product=%s, quantity=%d, sides=%d, areas=%d",
		product.ID, req.Quantity, len(req.Sides), len(req.Areas))

	sides, err := c.products.ListSides(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product sides: %w", err)
	}
	sideByID := make(map[string]models.Side, len(sides))
	for _, side := range sides {
		sideByID[side.ID] = side
	}

	productAreas, err := c.areas.ListByProduct(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product print areas: %w", err)
	}
	areaByID := make(map[string]models.PrintArea, len(productAreas))
	for _, area := range productAreas {
		areaByID[area.ID] = area
	}

	surcharges, err := c.rules.GetSurcharges(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load surcharges: %w", err)
	}
	sideSurcharge := make(map[string]models.Surcharge)
	areaSurcharge := make(map[string]models.Surcharge)
	for _, s := range surcharges {
		switch s.TargetType {
		case models.SurchargeTargetSide:
			sideSurcharge[s.TargetID] = s
		case models.SurchargeTargetArea:
			areaSurcharge[s.TargetID] = s
		}
	}

	breakdown := &models.PriceBreakdown{
		BasePrice:         product.BasePrice,
		PerAreaSurcharges: []models.AreaSurcharge{},
	}
	unitPrice := product.BasePrice

	seenSides := make(map[string]bool)
	for _, sideID := range req.Sides {
		if seenSides[sideID] {
			return nil, apperrors.NewInvalidRequest("duplicate side in request: %s", sideID)
		}
		seenSides[sideID] = true

		side, ok := sideByID[sideID]
		if !ok {
			return nil, apperrors.NewInvalidRequest("side %s does not belong to product %s", sideID, product.ID)
		}
		if s, ok := sideSurcharge[sideID]; ok {
			unitPrice += s.Price
			breakdown.PerAreaSurcharges = append(breakdown.PerAreaSurcharges, models.AreaSurcharge{
				Area:   s.Name,
				Amount: s.Price,
			})
			log.Printf("💰 Calculate: Side %s (%s) adds %d", side.Name, sideID, s.Price)
		}
	}

	seenAreas := make(map[string]bool)
	for _, selection := range req.Areas {
		if selection.AreaID == "" {
			return nil, apperrors.NewInvalidRequest("area selection is missing areaId")
		}
		if seenAreas[selection.AreaID] {
			return nil, apperrors.NewInvalidRequest("duplicate area in request: %s", selection.AreaID)
		}
		seenAreas[selection.AreaID] = true

		area, ok := areaByID[selection.AreaID]
		if !ok {
			return nil, apperrors.NewInvalidRequest("area %s does not belong to product %s", selection.AreaID, product.ID)
		}
		if !area.IsActive {
			return nil, apperrors.NewInvalidRequest("print area is not active: %s", area.ID)
		}
		if s, ok := areaSurcharge[area.ID]; ok {
			unitPrice += s.Price
			breakdown.PerAreaSurcharges = append(breakdown.PerAreaSurcharges, models.AreaSurcharge{
				Area:   s.Name,
				Amount: s.Price,
			})
			log.Printf("💰 Calculate: Area %s (%s) adds %d", area.Name, area.ID, s.Price)
		}
	}

	breakdown.QuantitySubtotal = unitPrice * int64(req.Quantity)

	tiers, err := c.rules.GetQuantityDiscounts(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quantity discounts: %w", err)
	}

	finalUnitPrice := unitPrice
	if rule := ResolveQuantityDiscount(tiers, req.Quantity); rule != nil {
		amount := ComputeDiscountAmount(rule, unitPrice)
		finalUnitPrice = unitPrice - amount
		if finalUnitPrice < 0 {
			finalUnitPrice = 0
		}
		breakdown.DiscountApplied = &models.AppliedDiscount{
			RuleID: rule.ID,
			Amount: amount,
		}
		log.Printf("💰 Calculate: Discount rule %s (min %d) removes %d per unit", rule.ID, rule.MinQuantity, amount)
	}

	breakdown.FinalUnitPrice = finalUnitPrice
	breakdown.FinalTotal = finalUnitPrice * int64(req.Quantity)

	log.Printf("✅ Calculate: product=%s unit=%d final=%d total=%d",
		product.ID, unitPrice, breakdown.FinalUnitPrice, breakdown.FinalTotal)
	return breakdown, nil
}

// ResolveQuantityDiscount picks the tier whose minQuantity is the greatest one
// still not above the requested quantity. If two tiers share that minQuantity
// the one with the larger discountValue wins. Returns nil when no tier applies.
func ResolveQuantityDiscount(tiers []models.QuantityDiscountRule, quantity int) *models.QuantityDiscountRule {
	var best *models.QuantityDiscountRule
	for i := range tiers {
		tier := &tiers[i]
		if tier.MinQuantity > quantity {
			continue
		}
		if best == nil ||
			tier.MinQuantity > best.MinQuantity ||
			(tier.MinQuantity == best.MinQuantity && tier.DiscountValue > best.DiscountValue) {
			best = tier
		}
	}
	return best
}

// ComputeDiscountAmount converts a discount rule into the per-unit amount in
// cents. Percentage discounts truncate toward zero; fixed discounts never
// exceed the unit price.
func ComputeDiscountAmount(rule *models.QuantityDiscountRule, unitPrice int64) int64 {
	switch rule.DiscountType {
	case models.DiscountTypePercentage:
		return unitPrice * rule.DiscountValue / 100
	case models.DiscountTypeFixed:
		if rule.DiscountValue > unitPrice {
			return unitPrice
		}
		return rule.DiscountValue
	default:
		return 0
	}
}
