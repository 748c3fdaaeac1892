package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

// DiscountCodeRepository handles database operations for discount codes
type DiscountCodeRepository struct {
	db *sql.DB
}

// NewDiscountCodeRepository creates a new DiscountCodeRepository
func NewDiscountCodeRepository(database *sql.DB) *DiscountCodeRepository {
	return &DiscountCodeRepository{db: database}
}

// Ensure DiscountCodeRepository implements DiscountCodeRepositoryInterface
var _ DiscountCodeRepositoryInterface = (*DiscountCodeRepository)(nil)

func scanDiscountCode(row interface{ Scan(...interface{}) error }) (*models.DiscountCode, error) {
	var code models.DiscountCode
	var validFrom, validUntil sql.NullString
	err := row.Scan(
		&code.ID,
		&code.Code,
		&code.Description,
		&code.DiscountType,
		&code.DiscountValue,
		&code.MinOrderValue,
		&code.MaxUses,
		&code.UsedCount,
		&validFrom,
		&validUntil,
		&code.IsActive,
		&code.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	code.ValidFrom = validFrom.String
	code.ValidUntil = validUntil.String
	return &code, nil
}

// Create creates a new discount code
func (r *DiscountCodeRepository) Create(ctx context.Context, req *models.CreateDiscountCodeRequest) (*models.DiscountCode, error) {
	log.Printf("🎟️ CreateDiscountCode: code=%s, type=%s, value=%d", req.Code, req.DiscountType, req.DiscountValue)

	normalized := strings.ToUpper(strings.TrimSpace(req.Code))
	if normalized == "" {
		return nil, apperrors.NewInvalidRequest("code is required")
	}
	if req.DiscountType != models.DiscountTypeFixed && req.DiscountType != models.DiscountTypePercentage {
		return nil, apperrors.NewInvalidRequest("discountType must be FIXED or PERCENTAGE")
	}
	if req.DiscountValue <= 0 {
		return nil, apperrors.NewInvalidRequest("discountValue must be positive")
	}
	if req.DiscountType == models.DiscountTypePercentage && req.DiscountValue > 100 {
		return nil, apperrors.NewInvalidRequest("percentage discount must not exceed 100")
	}

	var validFrom, validUntil interface{}
	if req.ValidFrom != "" {
		t, err := time.Parse(time.RFC3339, req.ValidFrom)
		if err != nil {
			return nil, apperrors.NewInvalidRequest("invalid validFrom format, use RFC3339")
		}
		validFrom = t
	}
	if req.ValidUntil != "" {
		t, err := time.Parse(time.RFC3339, req.ValidUntil)
		if err != nil {
			return nil, apperrors.NewInvalidRequest("invalid validUntil format, use RFC3339")
		}
		validUntil = t
	}

	query := `
		INSERT INTO discount_codes (id, code, description, discount_type, discount_value,
			min_order_value, max_uses, valid_from, valid_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, code, description, discount_type, discount_value,
		          min_order_value, max_uses, used_count, valid_from, valid_until, is_active, created_at
	`

	code, err := scanDiscountCode(r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		normalized,
		req.Description,
		req.DiscountType,
		req.DiscountValue,
		req.MinOrderValue,
		req.MaxUses,
		validFrom,
		validUntil,
	))
	if err != nil {
		log.Printf("❌ CreateDiscountCode: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert discount code: %w", err)
	}

	log.Printf("✅ CreateDiscountCode: Created code id=%s", code.ID)
	return code, nil
}

// GetByCode retrieves a discount code by its code string (case-insensitive)
func (r *DiscountCodeRepository) GetByCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	query := `
		SELECT id, code, description, discount_type, discount_value,
		       min_order_value, max_uses, used_count, valid_from, valid_until, is_active, created_at
		FROM discount_codes
		WHERE code = $1
	`

	result, err := scanDiscountCode(r.db.QueryRowContext(ctx, query, strings.ToUpper(strings.TrimSpace(code))))
	if err == sql.ErrNoRows {
		return nil, apperrors.NewInvalidRequest("discount code not found: %s", code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query discount code: %w", err)
	}

	return result, nil
}

// List retrieves all discount codes, newest first
func (r *DiscountCodeRepository) List(ctx context.Context) ([]models.DiscountCode, error) {
	query := `
		SELECT id, code, description, discount_type, discount_value,
		       min_order_value, max_uses, used_count, valid_from, valid_until, is_active, created_at
		FROM discount_codes
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount codes: %w", err)
	}
	defer rows.Close()

	var codes []models.DiscountCode
	for rows.Next() {
		code, err := scanDiscountCode(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan discount code: %w", err)
		}
		codes = append(codes, *code)
	}

	return codes, rows.Err()
}

// IncrementUsage bumps the used counter after a code is redeemed on an order
func (r *DiscountCodeRepository) IncrementUsage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE discount_codes SET used_count = used_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to increment code usage: %w", err)
	}
	return nil
}

// Deactivate disables a discount code without deleting its redemption history
func (r *DiscountCodeRepository) Deactivate(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE discount_codes SET is_active = false WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate discount code: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.NewInvalidRequest("discount code not found: %s", id)
	}

	log.Printf("✅ DeactivateDiscountCode: Deactivated code id=%s", id)
	return nil
}

// CodeExists reports whether a code string is already taken
func (r *DiscountCodeRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM discount_codes WHERE code = $1)`,
		strings.ToUpper(strings.TrimSpace(code))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check code existence: %w", err)
	}
	return exists, nil
}
