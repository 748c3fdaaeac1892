package controller

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// DiscountCodeController handles HTTP requests for discount codes
type DiscountCodeController struct {
	repository repository.DiscountCodeRepositoryInterface
}

// NewDiscountCodeController creates a new DiscountCodeController
func NewDiscountCodeController(repo repository.DiscountCodeRepositoryInterface) *DiscountCodeController {
	return &DiscountCodeController{
		repository: repo,
	}
}

// Create handles POST /admin/discount-codes
func (c *DiscountCodeController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateDiscountCode: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateDiscountCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateDiscountCode: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	code, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateDiscountCode: Error creating code: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreateDiscountCode: Successfully created code=%s id=%s", code.Code, code.ID)
	writeJSON(w, http.StatusCreated, code)
}

// List handles GET /admin/discount-codes
func (c *DiscountCodeController) List(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()
	codes, err := c.repository.List(ctx)
	if err != nil {
		log.Printf("❌ ListDiscountCodes: Error fetching codes: %v", err)
		writeError(w, err)
		return
	}
	if codes == nil {
		codes = []models.DiscountCode{}
	}

	writeJSON(w, http.StatusOK, models.DiscountCodeListResponse{Codes: codes})
}

// Validate handles POST /admin/discount-codes/validate
// Example request: {"code": "VERANO10", "orderTotal": 12000}
// Example response: {"valid": true, "code": "VERANO10", "discountAmount": 1200, "newTotal": 10800}
func (c *DiscountCodeController) Validate(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ValidateDiscountCode: Received %s request to %s", r.Method, r.URL.Path)

	var req models.ValidateDiscountCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ ValidateDiscountCode: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}
	if strings.TrimSpace(req.Code) == "" {
		writeError(w, apperrors.NewInvalidRequest("code is required"))
		return
	}
	if req.OrderTotal < 0 {
		writeError(w, apperrors.NewInvalidRequest("orderTotal must not be negative"))
		return
	}

	ctx := context.Background()
	response := validateCode(ctx, c.repository, req.Code, req.OrderTotal, time.Now())
	writeJSON(w, http.StatusOK, response)
}

// validateCode applies the full redemption checks of a code against an order
// total. It never returns an error: unknown or unusable codes come back with
// valid=false and a reason.
func validateCode(ctx context.Context, repo repository.DiscountCodeRepositoryInterface, rawCode string, orderTotal int64, now time.Time) *models.ValidateDiscountCodeResponse {
	normalized := strings.ToUpper(strings.TrimSpace(rawCode))
	response := &models.ValidateDiscountCodeResponse{
		Code:     normalized,
		NewTotal: orderTotal,
	}

	code, err := repo.GetByCode(ctx, normalized)
	if err != nil {
		response.Reason = "code not found"
		return response
	}

	if !code.IsActive {
		response.Reason = "code is inactive"
		return response
	}
	if code.ValidFrom != "" {
		from, err := time.Parse(time.RFC3339Nano, code.ValidFrom)
		if err == nil && now.Before(from) {
			response.Reason = "code is not yet valid"
			return response
		}
	}
	if code.ValidUntil != "" {
		until, err := time.Parse(time.RFC3339Nano, code.ValidUntil)
		if err == nil && now.After(until) {
			response.Reason = "code has expired"
			return response
		}
	}
	if code.MaxUses > 0 && code.UsedCount >= code.MaxUses {
		response.Reason = "code has reached its usage limit"
		return response
	}
	if code.MinOrderValue > 0 && orderTotal < code.MinOrderValue {
		response.Reason = fmt.Sprintf("order total below minimum of %d", code.MinOrderValue)
		return response
	}

	var amount int64
	switch code.DiscountType {
	case models.DiscountTypePercentage:
		amount = orderTotal * code.DiscountValue / 100
	case models.DiscountTypeFixed:
		amount = code.DiscountValue
		if amount > orderTotal {
			amount = orderTotal
		}
	}

	response.Valid = true
	response.DiscountAmount = amount
	response.NewTotal = orderTotal - amount
	return response
}

// codeCharset excludes ambiguous characters (0/O, 1/I)
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateCode handles GET /admin/discount-codes/generate-code
// Returns a fresh 8-character code guaranteed not to collide with an existing
// one.
func (c *DiscountCodeController) GenerateCode(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GenerateCode: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()

	const maxAttempts = 10
	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := randomCode(8)
		if err != nil {
			log.Printf("❌ GenerateCode: Error generating code: %v", err)
			writeError(w, err)
			return
		}

		exists, err := c.repository.CodeExists(ctx, code)
		if err != nil {
			log.Printf("❌ GenerateCode: Error checking code existence: %v", err)
			writeError(w, err)
			return
		}
		if !exists {
			log.Printf("✅ GenerateCode: Generated code=%s", code)
			writeJSON(w, http.StatusOK, models.GenerateCodeResponse{Code: code})
			return
		}
	}

	writeError(w, fmt.Errorf("failed to generate a unique code after %d attempts", maxAttempts))
}

func randomCode(length int) (string, error) {
	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(codeCharset))))
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		sb.WriteByte(codeCharset[n.Int64()])
	}
	return sb.String(), nil
}

// Deactivate handles DELETE /admin/discount-codes/:id
func (c *DiscountCodeController) Deactivate(w http.ResponseWriter, r *http.Request, codeID string) {
	log.Printf("📥 DeactivateDiscountCode: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()
	if err := c.repository.Deactivate(ctx, codeID); err != nil {
		log.Printf("❌ DeactivateDiscountCode: Error deactivating code %s: %v", codeID, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deactivated", "id": codeID})
}
