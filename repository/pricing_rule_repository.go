package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

// PricingRuleRepository handles database operations for personalization
// pricing rule sets, surcharge items and quantity discount tiers
type PricingRuleRepository struct {
	db *sql.DB
}

// NewPricingRuleRepository creates a new PricingRuleRepository
func NewPricingRuleRepository(database *sql.DB) *PricingRuleRepository {
	return &PricingRuleRepository{db: database}
}

// Ensure PricingRuleRepository implements PricingRuleRepositoryInterface
var _ PricingRuleRepositoryInterface = (*PricingRuleRepository)(nil)

// CreateRuleSet creates a rule set together with its surcharge items and
// quantity discount tiers in a single transaction.
//
// Duplicate minQuantity tiers within one set are rejected here: allowing them
// would make the applicable tier for a quantity ambiguous at read time.
func (r *PricingRuleRepository) CreateRuleSet(ctx context.Context, req *models.PricingRuleSet) (*models.PricingRuleSet, error) {
	log.Printf("💰 CreateRuleSet: productId=%s, name=%s, items=%d, tiers=%d",
		req.ProductID, req.Name, len(req.Items), len(req.QuantityDiscounts))

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewInvalidRequest("rule set name is required")
	}

	seen := make(map[int]bool)
	for _, tier := range req.QuantityDiscounts {
		if tier.MinQuantity < 1 {
			return nil, apperrors.NewInvalidRequest("minQuantity must be at least 1")
		}
		if tier.DiscountType != models.DiscountTypeFixed && tier.DiscountType != models.DiscountTypePercentage {
			return nil, apperrors.NewInvalidRequest("discountType must be FIXED or PERCENTAGE")
		}
		if tier.DiscountValue <= 0 {
			return nil, apperrors.NewInvalidRequest("discountValue must be positive")
		}
		if tier.DiscountType == models.DiscountTypePercentage && tier.DiscountValue > 100 {
			return nil, apperrors.NewInvalidRequest("percentage discount must not exceed 100")
		}
		if seen[tier.MinQuantity] {
			return nil, apperrors.NewInvalidRequest("duplicate minQuantity tier: %d", tier.MinQuantity)
		}
		seen[tier.MinQuantity] = true
	}

	for _, item := range req.Items {
		switch item.Type {
		case models.SurchargeTargetSide:
			if item.SideID == "" {
				return nil, apperrors.NewInvalidRequest("SIDE surcharge requires sideId")
			}
		case models.SurchargeTargetArea:
			if item.PrintAreaID == "" {
				return nil, apperrors.NewInvalidRequest("AREA surcharge requires printAreaId")
			}
		default:
			return nil, apperrors.NewInvalidRequest("surcharge type must be SIDE or AREA")
		}
		if item.Price < 0 {
			return nil, apperrors.NewInvalidRequest("surcharge price must not be negative")
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ruleSet := *req
	ruleSet.ID = uuid.NewString()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO pricing_rule_sets (id, product_id, name, description, is_active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING created_at
	`, ruleSet.ID, req.ProductID, req.Name, req.Description).Scan(&ruleSet.CreatedAt)
	if err != nil {
		log.Printf("❌ CreateRuleSet: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert rule set: %w", err)
	}
	ruleSet.IsActive = true

	for i := range ruleSet.Items {
		item := &ruleSet.Items[i]
		item.ID = uuid.NewString()
		item.RuleSetID = ruleSet.ID

		var sideID, areaID sql.NullString
		if item.SideID != "" {
			sideID = sql.NullString{String: item.SideID, Valid: true}
		}
		if item.PrintAreaID != "" {
			areaID = sql.NullString{String: item.PrintAreaID, Valid: true}
		}

		_, err := tx.ExecContext(ctx, `
			INSERT INTO pricing_rule_items (id, rule_set_id, type, side_id, print_area_id, price)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, item.ID, ruleSet.ID, item.Type, sideID, areaID, item.Price)
		if err != nil {
			log.Printf("❌ CreateRuleSet: Item insert failed: %v", err)
			return nil, fmt.Errorf("failed to insert rule item: %w", err)
		}
	}

	for i := range ruleSet.QuantityDiscounts {
		tier := &ruleSet.QuantityDiscounts[i]
		tier.ID = uuid.NewString()
		tier.RuleSetID = ruleSet.ID

		_, err := tx.ExecContext(ctx, `
			INSERT INTO quantity_discount_rules (id, rule_set_id, min_quantity, discount_type, discount_value)
			VALUES ($1, $2, $3, $4, $5)
		`, tier.ID, ruleSet.ID, tier.MinQuantity, tier.DiscountType, tier.DiscountValue)
		if err != nil {
			log.Printf("❌ CreateRuleSet: Tier insert failed: %v", err)
			return nil, fmt.Errorf("failed to insert discount tier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rule set: %w", err)
	}

	log.Printf("✅ CreateRuleSet: Created rule set id=%s", ruleSet.ID)
	return &ruleSet, nil
}

// ListByProduct retrieves the active rule sets of a product with their items
// and discount tiers
func (r *PricingRuleRepository) ListByProduct(ctx context.Context, productID string) ([]models.PricingRuleSet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, product_id, name, description, is_active, created_at
		FROM pricing_rule_sets
		WHERE product_id = $1 AND is_active = true
		ORDER BY created_at ASC
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule sets: %w", err)
	}
	defer rows.Close()

	var ruleSets []models.PricingRuleSet
	for rows.Next() {
		var rs models.PricingRuleSet
		if err := rows.Scan(&rs.ID, &rs.ProductID, &rs.Name, &rs.Description, &rs.IsActive, &rs.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan rule set: %w", err)
		}
		ruleSets = append(ruleSets, rs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rule sets: %w", err)
	}

	for i := range ruleSets {
		items, err := r.listItems(ctx, ruleSets[i].ID)
		if err != nil {
			return nil, err
		}
		ruleSets[i].Items = items

		tiers, err := r.listTiers(ctx, ruleSets[i].ID, ruleSets[i].Name, ruleSets[i].Description)
		if err != nil {
			return nil, err
		}
		ruleSets[i].QuantityDiscounts = tiers
	}

	return ruleSets, nil
}

func (r *PricingRuleRepository) listItems(ctx context.Context, ruleSetID string) ([]models.PricingRuleItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rule_set_id, type, COALESCE(side_id, ''), COALESCE(print_area_id, ''), price
		FROM pricing_rule_items
		WHERE rule_set_id = $1
		ORDER BY id ASC
	`, ruleSetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule items: %w", err)
	}
	defer rows.Close()

	var items []models.PricingRuleItem
	for rows.Next() {
		var item models.PricingRuleItem
		if err := rows.Scan(&item.ID, &item.RuleSetID, &item.Type, &item.SideID, &item.PrintAreaID, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan rule item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PricingRuleRepository) listTiers(ctx context.Context, ruleSetID, ruleName, ruleDescription string) ([]models.QuantityDiscountRule, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, rule_set_id, min_quantity, discount_type, discount_value
		FROM quantity_discount_rules
		WHERE rule_set_id = $1
		ORDER BY min_quantity ASC
	`, ruleSetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query discount tiers: %w", err)
	}
	defer rows.Close()

	var tiers []models.QuantityDiscountRule
	for rows.Next() {
		var tier models.QuantityDiscountRule
		if err := rows.Scan(&tier.ID, &tier.RuleSetID, &tier.MinQuantity, &tier.DiscountType, &tier.DiscountValue); err != nil {
			return nil, fmt.Errorf("failed to scan discount tier: %w", err)
		}
		tier.RuleName = ruleName
		tier.RuleDescription = ruleDescription
		tiers = append(tiers, tier)
	}
	return tiers, rows.Err()
}

// GetSurcharges retrieves the flattened surcharge entries of a product across
// all its active rule sets, labeled with side/area names for the breakdown.
func (r *PricingRuleRepository) GetSurcharges(ctx context.Context, productID string) ([]models.Surcharge, error) {
	query := `
		SELECT pri.type,
		       COALESCE(pri.side_id, pri.print_area_id) as target_id,
		       COALESCE(ps.name, pa.name, '') as target_name,
		       pri.price
		FROM pricing_rule_items pri
		INNER JOIN pricing_rule_sets prs ON pri.rule_set_id = prs.id
		LEFT JOIN product_sides ps ON pri.side_id = ps.id
		LEFT JOIN print_areas pa ON pri.print_area_id = pa.id
		WHERE prs.product_id = $1 AND prs.is_active = true
		ORDER BY pri.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query surcharges: %w", err)
	}
	defer rows.Close()

	var surcharges []models.Surcharge
	for rows.Next() {
		var s models.Surcharge
		if err := rows.Scan(&s.TargetType, &s.TargetID, &s.Name, &s.Price); err != nil {
			return nil, fmt.Errorf("failed to scan surcharge: %w", err)
		}
		surcharges = append(surcharges, s)
	}

	return surcharges, rows.Err()
}

// GetQuantityDiscounts retrieves every discount tier configured for a product
// across its active rule sets, ordered by min_quantity ascending and labeled
// with the owning rule set's name and description.
func (r *PricingRuleRepository) GetQuantityDiscounts(ctx context.Context, productID string) ([]models.QuantityDiscountRule, error) {
	query := `
		SELECT qdr.id, qdr.rule_set_id, qdr.min_quantity, qdr.discount_type, qdr.discount_value,
		       prs.name, prs.description
		FROM quantity_discount_rules qdr
		INNER JOIN pricing_rule_sets prs ON qdr.rule_set_id = prs.id
		WHERE prs.product_id = $1 AND prs.is_active = true
		ORDER BY qdr.min_quantity ASC, qdr.discount_value DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query quantity discounts: %w", err)
	}
	defer rows.Close()

	var tiers []models.QuantityDiscountRule
	for rows.Next() {
		var tier models.QuantityDiscountRule
		err := rows.Scan(
			&tier.ID,
			&tier.RuleSetID,
			&tier.MinQuantity,
			&tier.DiscountType,
			&tier.DiscountValue,
			&tier.RuleName,
			&tier.RuleDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quantity discount: %w", err)
		}
		tiers = append(tiers, tier)
	}

	return tiers, rows.Err()
}

// Delete deactivates a rule set. Historical orders keep their recorded prices,
// so rule sets are soft-deleted.
func (r *PricingRuleRepository) Delete(ctx context.Context, ruleSetID string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE pricing_rule_sets SET is_active = false WHERE id = $1`, ruleSetID)
	if err != nil {
		return fmt.Errorf("failed to deactivate rule set: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return apperrors.NewInvalidRequest("rule set not found: %s", ruleSetID)
	}

	log.Printf("✅ DeleteRuleSet: Deactivated rule set id=%s", ruleSetID)
	return nil
}
