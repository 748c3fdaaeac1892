package controller

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

type stubDiscountCodeRepo struct {
	repository.DiscountCodeRepositoryInterface
	codes map[string]*models.DiscountCode
}

func (s *stubDiscountCodeRepo) GetByCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	if c, ok := s.codes[code]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("discount code %s not found", code)
}

func (s *stubDiscountCodeRepo) CodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := s.codes[code]
	return ok, nil
}

func TestValidateCode(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	repo := &stubDiscountCodeRepo{codes: map[string]*models.DiscountCode{
		"VERANO10": {
			Code: "VERANO10", IsActive: true,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
		},
		"MENOS5": {
			Code: "MENOS5", IsActive: true,
			DiscountType: models.DiscountTypeFixed, DiscountValue: 500,
		},
		"INACTIVO": {
			Code: "INACTIVO", IsActive: false,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
		},
		"FUTURO": {
			Code: "FUTURO", IsActive: true,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
			ValidFrom: "2026-12-01T00:00:00Z",
		},
		"CADUCADO": {
			Code: "CADUCADO", IsActive: true,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
			ValidUntil: "2026-01-01T00:00:00Z",
		},
		"AGOTADO": {
			Code: "AGOTADO", IsActive: true,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
			MaxUses: 3, UsedCount: 3,
		},
		"MINIMO": {
			Code: "MINIMO", IsActive: true,
			DiscountType: models.DiscountTypePercentage, DiscountValue: 10,
			MinOrderValue: 5000,
		},
	}}

	tests := []struct {
		name       string
		code       string
		orderTotal int64
		wantValid  bool
		wantAmount int64
		wantTotal  int64
		wantReason string
	}{
		{"percentage applies", "VERANO10", 12000, true, 1200, 10800, ""},
		{"lowercase and spaces normalized", "  verano10 ", 12000, true, 1200, 10800, ""},
		{"fixed applies", "MENOS5", 12000, true, 500, 11500, ""},
		{"fixed capped at order total", "MENOS5", 300, true, 300, 0, ""},
		{"unknown code", "NOEXISTE", 12000, false, 0, 12000, "code not found"},
		{"inactive code", "INACTIVO", 12000, false, 0, 12000, "code is inactive"},
		{"not yet valid", "FUTURO", 12000, false, 0, 12000, "code is not yet valid"},
		{"expired", "CADUCADO", 12000, false, 0, 12000, "code has expired"},
		{"usage limit reached", "AGOTADO", 12000, false, 0, 12000, "code has reached its usage limit"},
		{"below minimum order", "MINIMO", 4000, false, 0, 4000, "order total below minimum of 5000"},
		{"meets minimum order", "MINIMO", 5000, true, 500, 4500, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := validateCode(context.Background(), repo, tt.code, tt.orderTotal, now)
			if resp.Valid != tt.wantValid {
				t.Errorf("valid = %v, want %v (reason: %s)", resp.Valid, tt.wantValid, resp.Reason)
			}
			if resp.DiscountAmount != tt.wantAmount {
				t.Errorf("discountAmount = %d, want %d", resp.DiscountAmount, tt.wantAmount)
			}
			if resp.NewTotal != tt.wantTotal {
				t.Errorf("newTotal = %d, want %d", resp.NewTotal, tt.wantTotal)
			}
			if resp.Reason != tt.wantReason {
				t.Errorf("reason = %q, want %q", resp.Reason, tt.wantReason)
			}
		})
	}
}

func TestRandomCode(t *testing.T) {
	code, err := randomCode(8)
	if err != nil {
		t.Fatalf("randomCode returned error: %v", err)
	}
	if len(code) != 8 {
		t.Errorf("len = %d, want 8", len(code))
	}
	for _, ch := range code {
		if !strings.ContainsRune(codeCharset, ch) {
			t.Errorf("code %q contains character %q outside charset", code, ch)
		}
	}
}
