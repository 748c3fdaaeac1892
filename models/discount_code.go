package models

// DiscountCode represents a storefront discount code
type DiscountCode struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	DiscountType  string `json:"discountType"` // FIXED or PERCENTAGE
	DiscountValue int64  `json:"discountValue"`
	MinOrderValue int64  `json:"minOrderValue"` // 0 = no minimum
	MaxUses       int    `json:"maxUses"`       // 0 = unlimited
	UsedCount     int    `json:"usedCount"`
	ValidFrom     string `json:"validFrom,omitempty"`
	ValidUntil    string `json:"validUntil,omitempty"`
	IsActive      bool   `json:"isActive"`
	CreatedAt     string `json:"createdAt"`
}

// CreateDiscountCodeRequest represents the request body for creating a discount code
// Example: {
//   "code": "VERANO10",
//   "discountType": "PERCENTAGE",
//   "discountValue": 10,
//   "minOrderValue": 2000,
//   "maxUses": 100,
//   "validUntil": "2026-09-30T23:59:59Z"
// }
type CreateDiscountCodeRequest struct {
	Code          string `json:"code"`
	Description   string `json:"description"`
	DiscountType  string `json:"discountType"`
	DiscountValue int64  `json:"discountValue"`
	MinOrderValue int64  `json:"minOrderValue"`
	MaxUses       int    `json:"maxUses"`
	ValidFrom     string `json:"validFrom,omitempty"`
	ValidUntil    string `json:"validUntil,omitempty"`
}

// ValidateDiscountCodeRequest represents the request body for validating a code
// against an order total
type ValidateDiscountCodeRequest struct {
	Code       string `json:"code"`
	OrderTotal int64  `json:"orderTotal"`
}

// ValidateDiscountCodeResponse reports whether the code applies and for how much
type ValidateDiscountCodeResponse struct {
	Valid          bool   `json:"valid"`
	Reason         string `json:"reason,omitempty"`
	Code           string `json:"code"`
	DiscountAmount int64  `json:"discountAmount"`
	NewTotal       int64  `json:"newTotal"`
}

// GenerateCodeResponse wraps a freshly generated unused code
type GenerateCodeResponse struct {
	Code string `json:"code"`
}

// DiscountCodeListResponse wraps a list of discount codes
type DiscountCodeListResponse struct {
	Codes []DiscountCode `json:"codes"`
}
