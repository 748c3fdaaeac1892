package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

type stubOrderRepo struct {
	repository.OrderRepositoryInterface
	order *models.Order
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if s.order == nil || s.order.ID != id {
		return nil, &apperrors.OrderNotFoundError{OrderID: id}
	}
	return s.order, nil
}

func TestGetOrderNotFound(t *testing.T) {
	controller := NewOrderController(&stubOrderRepo{}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/ord-404", nil)
	rec := httptest.NewRecorder()

	controller.Get(rec, req, "ord-404")

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

func TestGetOrderFound(t *testing.T) {
	repo := &stubOrderRepo{order: &models.Order{
		ID:           "ord-1",
		CustomerName: "Ana García",
		Status:       models.OrderStatusPending,
		Total:        10200,
	}}
	controller := NewOrderController(repo, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders/ord-1", nil)
	rec := httptest.NewRecorder()

	controller.Get(rec, req, "ord-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var order models.Order
	if err := json.NewDecoder(rec.Body).Decode(&order); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if order.ID != "ord-1" || order.Total != 10200 {
		t.Errorf("order = %+v, want ord-1 with total 10200", order)
	}
}
