package repository

import (
	"testing"

	"lovilike-backoffice/models"
)

func transitionAllowed(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func TestOrderTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.OrderStatusPending, models.OrderStatusPaid, true},
		{models.OrderStatusPending, models.OrderStatusCancelled, true},
		{models.OrderStatusPaid, models.OrderStatusInProduction, true},
		{models.OrderStatusPaid, models.OrderStatusCancelled, true},
		{models.OrderStatusInProduction, models.OrderStatusShipped, true},
		{models.OrderStatusShipped, models.OrderStatusDelivered, true},

		{models.OrderStatusPending, models.OrderStatusShipped, false},
		{models.OrderStatusPending, models.OrderStatusDelivered, false},
		{models.OrderStatusInProduction, models.OrderStatusCancelled, false},
		{models.OrderStatusShipped, models.OrderStatusCancelled, false},
		{models.OrderStatusDelivered, models.OrderStatusPending, false},
		{models.OrderStatusCancelled, models.OrderStatusPaid, false},
		{models.OrderStatusPaid, models.OrderStatusPaid, false},
	}

	for _, tt := range tests {
		if got := transitionAllowed(tt.from, tt.to); got != tt.want {
			t.Errorf("transition %s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}
