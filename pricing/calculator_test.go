package pricing

import (
	"context"
	"errors"
	"testing"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// Fakes embed the interface so only the methods the calculator touches need
// an implementation.

type fakeProductRepo struct {
	repository.ProductRepositoryInterface
	product *models.Product
	sides   []models.Side
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if f.product == nil || f.product.ID != id {
		return nil, &apperrors.ProductNotFoundError{ProductID: id}
	}
	return f.product, nil
}

func (f *fakeProductRepo) ListSides(ctx context.Context, productID string) ([]models.Side, error) {
	return f.sides, nil
}

type fakeAreaRepo struct {
	repository.PrintAreaRepositoryInterface
	areas []models.PrintArea
}

func (f *fakeAreaRepo) ListByProduct(ctx context.Context, productID string) ([]models.PrintArea, error) {
	return f.areas, nil
}

type fakeRuleRepo struct {
	repository.PricingRuleRepositoryInterface
	surcharges []models.Surcharge
	discounts  []models.QuantityDiscountRule
}

func (f *fakeRuleRepo) GetSurcharges(ctx context.Context, productID string) ([]models.Surcharge, error) {
	return f.surcharges, nil
}

func (f *fakeRuleRepo) GetQuantityDiscounts(ctx context.Context, productID string) ([]models.QuantityDiscountRule, error) {
	return f.discounts, nil
}

// newTestCalculator builds a calculator around a 10,00 € shirt with one side,
// one 2,00 € area surcharge and 10%/15% discount tiers at 5 and 10 units.
func newTestCalculator() *Calculator {
	products := &fakeProductRepo{
		product: &models.Product{
			ID:               "prod-1",
			Name:             "Camiseta básica",
			BasePrice:        1000,
			IsPersonalizable: true,
			IsActive:         true,
		},
		sides: []models.Side{
			{ID: "side-front", ProductID: "prod-1", Name: "FRONT"},
		},
	}
	areas := &fakeAreaRepo{
		areas: []models.PrintArea{
			{ID: "area-escudo", SideID: "side-front", Name: "ESCUDO", IsActive: true},
			{ID: "area-nombre", SideID: "side-front", Name: "NOMBRE", IsActive: true},
		},
	}
	rules := &fakeRuleRepo{
		surcharges: []models.Surcharge{
			{TargetID: "area-escudo", TargetType: models.SurchargeTargetArea, Name: "Escudo pecho", Price: 200},
		},
		discounts: []models.QuantityDiscountRule{
			{ID: "tier-5", MinQuantity: 5, DiscountType: models.DiscountTypePercentage, DiscountValue: 10},
			{ID: "tier-10", MinQuantity: 10, DiscountType: models.DiscountTypePercentage, DiscountValue: 15},
		},
	}
	return NewCalculator(products, areas, rules)
}

func TestCalculateWithAreaSurchargeAndDiscount(t *testing.T) {
	calc := newTestCalculator()

	breakdown, err := calc.Calculate(context.Background(), &models.PriceRequest{
		ProductID: "prod-1",
		Quantity:  10,
		Sides:     []string{"side-front"},
		Areas:     []models.AreaSelection{{AreaID: "area-escudo"}},
	})
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	// unit = 1000 + 200 = 1200; 15% tier removes 180; final unit 1020
	if breakdown.BasePrice != 1000 {
		t.Errorf("basePrice = %d, want 1000", breakdown.BasePrice)
	}
	if len(breakdown.PerAreaSurcharges) != 1 || breakdown.PerAreaSurcharges[0].Amount != 200 {
		t.Errorf("perAreaSurcharges = %+v, want one line of 200", breakdown.PerAreaSurcharges)
	}
	if breakdown.QuantitySubtotal != 12000 {
		t.Errorf("quantitySubtotal = %d, want 12000", breakdown.QuantitySubtotal)
	}
	if breakdown.DiscountApplied == nil || breakdown.DiscountApplied.RuleID != "tier-10" {
		t.Fatalf("discountApplied = %+v, want tier-10", breakdown.DiscountApplied)
	}
	if breakdown.DiscountApplied.Amount != 180 {
		t.Errorf("discount amount = %d, want 180", breakdown.DiscountApplied.Amount)
	}
	if breakdown.FinalUnitPrice != 1020 {
		t.Errorf("finalUnitPrice = %d, want 1020", breakdown.FinalUnitPrice)
	}
	if breakdown.FinalTotal != 10200 {
		t.Errorf("finalTotal = %d, want 10200", breakdown.FinalTotal)
	}
}

func TestCalculateTierBoundaries(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		quantity      int
		wantRuleID    string
		wantUnitPrice int64
	}{
		{1, "", 1000},        // below every tier
		{4, "", 1000},        // still below the first tier
		{5, "tier-5", 900},   // 10% off at the boundary
		{9, "tier-5", 900},   // tier-5 holds until the next boundary
		{10, "tier-10", 850}, // 15% off
		{50, "tier-10", 850}, // the largest tier applies to everything above it
	}

	for _, tt := range tests {
		breakdown, err := calc.Calculate(context.Background(), &models.PriceRequest{
			ProductID: "prod-1",
			Quantity:  tt.quantity,
		})
		if err != nil {
			t.Fatalf("quantity %d: Calculate returned error: %v", tt.quantity, err)
		}

		if tt.wantRuleID == "" {
			if breakdown.DiscountApplied != nil {
				t.Errorf("quantity %d: expected no discount, got %+v", tt.quantity, breakdown.DiscountApplied)
			}
		} else if breakdown.DiscountApplied == nil || breakdown.DiscountApplied.RuleID != tt.wantRuleID {
			t.Errorf("quantity %d: discountApplied = %+v, want rule %s", tt.quantity, breakdown.DiscountApplied, tt.wantRuleID)
		}
		if breakdown.FinalUnitPrice != tt.wantUnitPrice {
			t.Errorf("quantity %d: finalUnitPrice = %d, want %d", tt.quantity, breakdown.FinalUnitPrice, tt.wantUnitPrice)
		}
	}
}

func TestCalculateRejectsBadRequests(t *testing.T) {
	calc := newTestCalculator()

	tests := []struct {
		name string
		req  *models.PriceRequest
	}{
		{"zero quantity", &models.PriceRequest{ProductID: "prod-1", Quantity: 0}},
		{"negative quantity", &models.PriceRequest{ProductID: "prod-1", Quantity: -3}},
		{"missing product id", &models.PriceRequest{Quantity: 1}},
		{"unknown side", &models.PriceRequest{ProductID: "prod-1", Quantity: 1, Sides: []string{"side-back"}}},
		{"duplicate side", &models.PriceRequest{ProductID: "prod-1", Quantity: 1, Sides: []string{"side-front", "side-front"}}},
		{"unknown area", &models.PriceRequest{ProductID: "prod-1", Quantity: 1,
			Areas: []models.AreaSelection{{AreaID: "area-404"}}}},
		{"duplicate area", &models.PriceRequest{ProductID: "prod-1", Quantity: 1,
			Areas: []models.AreaSelection{{AreaID: "area-escudo"}, {AreaID: "area-escudo"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Calculate(context.Background(), tt.req)
			var invalidReq *apperrors.InvalidRequestError
			if !errors.As(err, &invalidReq) {
				t.Errorf("expected InvalidRequestError, got %v", err)
			}
		})
	}
}

func TestCalculateUnknownProduct(t *testing.T) {
	calc := newTestCalculator()

	_, err := calc.Calculate(context.Background(), &models.PriceRequest{ProductID: "prod-404", Quantity: 1})
	var productNF *apperrors.ProductNotFoundError
	if !errors.As(err, &productNF) {
		t.Errorf("expected ProductNotFoundError, got %v", err)
	}
}

func TestCalculateInactiveProductIsNotFound(t *testing.T) {
	// An inactive product reads the same as a missing one for pricing
	products := &fakeProductRepo{
		product: &models.Product{
			ID:               "prod-1",
			Name:             "Camiseta retirada",
			BasePrice:        1000,
			IsPersonalizable: true,
			IsActive:         false,
		},
	}
	calc := NewCalculator(products, &fakeAreaRepo{}, &fakeRuleRepo{})

	_, err := calc.Calculate(context.Background(), &models.PriceRequest{ProductID: "prod-1", Quantity: 1})
	var productNF *apperrors.ProductNotFoundError
	if !errors.As(err, &productNF) {
		t.Errorf("expected ProductNotFoundError, got %v", err)
	}
}

func TestResolveQuantityDiscountTieBreak(t *testing.T) {
	// Two tiers at the same minQuantity: the larger discountValue wins
	tiers := []models.QuantityDiscountRule{
		{ID: "small", MinQuantity: 5, DiscountType: models.DiscountTypePercentage, DiscountValue: 5},
		{ID: "big", MinQuantity: 5, DiscountType: models.DiscountTypePercentage, DiscountValue: 12},
	}

	rule := ResolveQuantityDiscount(tiers, 7)
	if rule == nil || rule.ID != "big" {
		t.Errorf("resolved %+v, want the big tier", rule)
	}
}

func TestResolveQuantityDiscountNoTier(t *testing.T) {
	tiers := []models.QuantityDiscountRule{
		{ID: "tier-5", MinQuantity: 5, DiscountType: models.DiscountTypeFixed, DiscountValue: 100},
	}
	if rule := ResolveQuantityDiscount(tiers, 4); rule != nil {
		t.Errorf("resolved %+v, want nil", rule)
	}
	if rule := ResolveQuantityDiscount(nil, 100); rule != nil {
		t.Errorf("resolved %+v, want nil for empty tiers", rule)
	}
}

func TestComputeDiscountAmount(t *testing.T) {
	tests := []struct {
		name      string
		rule      models.QuantityDiscountRule
		unitPrice int64
		want      int64
	}{
		{"percentage", models.QuantityDiscountRule{DiscountType: models.DiscountTypePercentage, DiscountValue: 15}, 1200, 180},
		{"percentage truncates", models.QuantityDiscountRule{DiscountType: models.DiscountTypePercentage, DiscountValue: 10}, 1015, 101},
		{"fixed", models.QuantityDiscountRule{DiscountType: models.DiscountTypeFixed, DiscountValue: 300}, 1200, 300},
		{"fixed capped at unit price", models.QuantityDiscountRule{DiscountType: models.DiscountTypeFixed, DiscountValue: 5000}, 1200, 1200},
		{"unknown type", models.QuantityDiscountRule{DiscountType: "WEIRD", DiscountValue: 50}, 1200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeDiscountAmount(&tt.rule, tt.unitPrice); got != tt.want {
				t.Errorf("ComputeDiscountAmount = %d, want %d", got, tt.want)
			}
		})
	}
}
