package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/pricing"
	"lovilike-backoffice/repository"
)

type stubProductRepo struct {
	repository.ProductRepositoryInterface
	product *models.Product
	sides   []models.Side
}

func (s *stubProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, &apperrors.ProductNotFoundError{ProductID: id}
	}
	return s.product, nil
}

func (s *stubProductRepo) ListSides(ctx context.Context, productID string) ([]models.Side, error) {
	return s.sides, nil
}

type stubAreaRepo struct {
	repository.PrintAreaRepositoryInterface
	areas []models.PrintArea
}

func (s *stubAreaRepo) ListByProduct(ctx context.Context, productID string) ([]models.PrintArea, error) {
	return s.areas, nil
}

type stubRuleRepo struct {
	repository.PricingRuleRepositoryInterface
	surcharges []models.Surcharge
	discounts  []models.QuantityDiscountRule
}

func (s *stubRuleRepo) GetSurcharges(ctx context.Context, productID string) ([]models.Surcharge, error) {
	return s.surcharges, nil
}

func (s *stubRuleRepo) GetQuantityDiscounts(ctx context.Context, productID string) ([]models.QuantityDiscountRule, error) {
	return s.discounts, nil
}

func newTestPersonalizationController() *PersonalizationController {
	products := &stubProductRepo{
		product: &models.Product{
			ID:               "prod-1",
			Name:             "Taza personalizada",
			BasePrice:        1000,
			IsPersonalizable: true,
			IsActive:         true,
		},
		sides: []models.Side{{ID: "side-front", ProductID: "prod-1", Name: "FRONT"}},
	}
	areas := &stubAreaRepo{
		areas: []models.PrintArea{{ID: "area-logo", SideID: "side-front", Name: "LOGO", IsActive: true}},
	}
	rules := &stubRuleRepo{
		surcharges: []models.Surcharge{
			{TargetID: "area-logo", TargetType: models.SurchargeTargetArea, Name: "Logo", Price: 200},
		},
		discounts: []models.QuantityDiscountRule{
			{ID: "tier-10", MinQuantity: 10, DiscountType: models.DiscountTypePercentage, DiscountValue: 15},
		},
	}
	calculator := pricing.NewCalculator(products, areas, rules)
	return NewPersonalizationController(calculator, rules, products)
}

func TestPriceEndpoint(t *testing.T) {
	controller := newTestPersonalizationController()

	body := `{"productId":"prod-1","quantity":10,"sides":["side-front"],"areas":[{"areaId":"area-logo"}]}`
	req := httptest.NewRequest(http.MethodPost, "/personalization/price", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.Price(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var breakdown models.PriceBreakdown
	if err := json.NewDecoder(rec.Body).Decode(&breakdown); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if breakdown.FinalUnitPrice != 1020 {
		t.Errorf("finalUnitPrice = %d, want 1020", breakdown.FinalUnitPrice)
	}
	if breakdown.FinalTotal != 10200 {
		t.Errorf("finalTotal = %d, want 10200", breakdown.FinalTotal)
	}
}

func TestPriceEndpointAcceptsBareStringAreas(t *testing.T) {
	controller := newTestPersonalizationController()

	// Older clients send plain area id strings instead of objects
	body := `{"productId":"prod-1","quantity":1,"areas":["area-logo"]}`
	req := httptest.NewRequest(http.MethodPost, "/personalization/price", strings.NewReader(body))
	rec := httptest.NewRecorder()

	controller.Price(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var breakdown models.PriceBreakdown
	if err := json.NewDecoder(rec.Body).Decode(&breakdown); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if breakdown.FinalUnitPrice != 1200 {
		t.Errorf("finalUnitPrice = %d, want 1200", breakdown.FinalUnitPrice)
	}
}

func TestPriceEndpointErrors(t *testing.T) {
	controller := newTestPersonalizationController()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKind   apperrors.Kind
	}{
		{"malformed json", `{"productId":`, http.StatusBadRequest, apperrors.KindInvalidRequest},
		{"zero quantity", `{"productId":"prod-1","quantity":0}`, http.StatusBadRequest, apperrors.KindInvalidRequest},
		{"unknown product", `{"productId":"prod-404","quantity":1}`, http.StatusNotFound, apperrors.KindNotFound},
		{"unknown area", `{"productId":"prod-1","quantity":1,"areas":[{"areaId":"area-404"}]}`, http.StatusBadRequest, apperrors.KindInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/personalization/price", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			controller.Price(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			var errResp ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if errResp.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", errResp.Kind, tt.wantKind)
			}
			if errResp.Error == "" {
				t.Error("error message is empty")
			}
		})
	}
}

func TestPriceEndpointMethodNotAllowed(t *testing.T) {
	controller := newTestPersonalizationController()

	req := httptest.NewRequest(http.MethodGet, "/personalization/price", nil)
	rec := httptest.NewRecorder()

	controller.Price(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestQuantityDiscountsEndpoint(t *testing.T) {
	controller := newTestPersonalizationController()

	req := httptest.NewRequest(http.MethodGet, "/products/prod-1/quantity-discounts", nil)
	rec := httptest.NewRecorder()

	controller.QuantityDiscounts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp models.QuantityDiscountListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Discounts) != 1 || resp.Discounts[0].MinQuantity != 10 {
		t.Errorf("discounts = %+v, want one tier at minQuantity 10", resp.Discounts)
	}
}

func TestQuantityDiscountsUnknownProduct(t *testing.T) {
	controller := newTestPersonalizationController()

	req := httptest.NewRequest(http.MethodGet, "/products/prod-404/quantity-discounts", nil)
	rec := httptest.NewRecorder()

	controller.QuantityDiscounts(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body: %s", rec.Code, rec.Body.String())
	}

	var errResp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if errResp.Kind != apperrors.KindNotFound {
		t.Errorf("kind = %q, want %q", errResp.Kind, apperrors.KindNotFound)
	}
}
