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
	"lovilike-backoffice/utils"
)

const printAreaColumns = `id, side_id, name, display_name, x, y, width, height,
	is_relative_coordinates, reference_width, reference_height,
	printing_method, sort_order, is_active, created_at`

// PrintAreaRepository handles database operations for print areas
type PrintAreaRepository struct {
	db *sql.DB
}

// NewPrintAreaRepository creates a new PrintAreaRepository
func NewPrintAreaRepository(database *sql.DB) *PrintAreaRepository {
	return &PrintAreaRepository{db: database}
}

// Ensure PrintAreaRepository implements PrintAreaRepositoryInterface
var _ PrintAreaRepositoryInterface = (*PrintAreaRepository)(nil)

func scanPrintArea(row interface{ Scan(...interface{}) error }) (*models.PrintArea, error) {
	var area models.PrintArea
	err := row.Scan(
		&area.ID,
		&area.SideID,
		&area.Name,
		&area.DisplayName,
		&area.X,
		&area.Y,
		&area.Width,
		&area.Height,
		&area.IsRelativeCoordinates,
		&area.ReferenceWidth,
		&area.ReferenceHeight,
		&area.PrintingMethod,
		&area.SortOrder,
		&area.IsActive,
		&area.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &area, nil
}

// validateGeometry checks the containment invariant for the requested
// representation before anything is written.
func validateGeometry(rect models.Rect, relative bool, refWidth, refHeight int) error {
	if relative {
		return utils.ValidateRelativeRect(rect)
	}
	if refWidth <= 0 || refHeight <= 0 {
		return &apperrors.InvalidGeometryError{
			Message: "absolute coordinates require positive reference dimensions",
		}
	}
	return utils.ValidateAbsoluteRect(rect)
}

// Create creates a new print area on a side
func (r *PrintAreaRepository) Create(ctx context.Context, sideID string, req *models.CreatePrintAreaRequest) (*models.PrintArea, error) {
	log.Printf("🖨️ CreatePrintArea: sideId=%s, name=%s", sideID, req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewInvalidRequest("area name is required")
	}
	if !utils.IsValidPrintingMethod(req.PrintingMethod) {
		return nil, apperrors.NewInvalidRequest("unknown printing method: %s", req.PrintingMethod)
	}

	rect := models.Rect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if err := validateGeometry(rect, req.IsRelativeCoordinates, req.ReferenceWidth, req.ReferenceHeight); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO print_areas (id, side_id, name, display_name, x, y, width, height,
			is_relative_coordinates, reference_width, reference_height,
			printing_method, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %s
	`, printAreaColumns)

	area, err := scanPrintArea(r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		sideID,
		strings.ToUpper(strings.TrimSpace(req.Name)),
		req.DisplayName,
		req.X,
		req.Y,
		req.Width,
		req.Height,
		req.IsRelativeCoordinates,
		req.ReferenceWidth,
		req.ReferenceHeight,
		strings.ToUpper(strings.TrimSpace(req.PrintingMethod)),
		req.SortOrder,
	))
	if err != nil {
		log.Printf("❌ CreatePrintArea: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert print area: %w", err)
	}

	log.Printf("✅ CreatePrintArea: Created area id=%s name=%s", area.ID, area.Name)
	return area, nil
}

// GetByID retrieves a print area by id
func (r *PrintAreaRepository) GetByID(ctx context.Context, areaID string) (*models.PrintArea, error) {
	query := fmt.Sprintf(`SELECT %s FROM print_areas WHERE id = $1`, printAreaColumns)

	area, err := scanPrintArea(r.db.QueryRowContext(ctx, query, areaID))
	if err == sql.ErrNoRows {
		return nil, &apperrors.AreaNotFoundError{AreaID: areaID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query print area: %w", err)
	}

	return area, nil
}

// ListBySide retrieves the print areas of a side. Order is irrelevant to
// callers but kept stable for the editor UI.
func (r *PrintAreaRepository) ListBySide(ctx context.Context, sideID string) ([]models.PrintArea, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM print_areas
		WHERE side_id = $1
		ORDER BY sort_order ASC, id ASC
	`, printAreaColumns)

	return r.queryAreas(ctx, query, sideID)
}

// ListByProduct retrieves every active print area across all sides of a product
func (r *PrintAreaRepository) ListByProduct(ctx context.Context, productID string) ([]models.PrintArea, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM print_areas
		WHERE side_id IN (SELECT id FROM product_sides WHERE product_id = $1)
		  AND is_active = true
		ORDER BY sort_order ASC, id ASC
	`, printAreaColumns)

	return r.queryAreas(ctx, query, productID)
}

func (r *PrintAreaRepository) queryAreas(ctx context.Context, query string, arg interface{}) ([]models.PrintArea, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query print areas: %w", err)
	}
	defer rows.Close()

	var areas []models.PrintArea
	for rows.Next() {
		area, err := scanPrintArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan print area: %w", err)
		}
		areas = append(areas, *area)
	}

	return areas, rows.Err()
}

// SetGeometry overwrites the geometry of a print area after validating the
// containment invariant for the requested representation.
func (r *PrintAreaRepository) SetGeometry(ctx context.Context, areaID string, req *models.SetGeometryRequest) (*models.PrintArea, error) {
	log.Printf("🖨️ SetAreaGeometry: areaId=%s, relative=%t", areaID, req.IsRelativeCoordinates)

	rect := models.Rect{X: req.X, Y: req.Y, Width: req.Width, Height: req.Height}
	if err := validateGeometry(rect, req.IsRelativeCoordinates, req.ReferenceWidth, req.ReferenceHeight); err != nil {
		log.Printf("❌ SetAreaGeometry: Invalid geometry for area %s: %v", areaID, err)
		return nil, err
	}

	query := fmt.Sprintf(`
		UPDATE print_areas
		SET x = $1, y = $2, width = $3, height = $4,
		    is_relative_coordinates = $5, reference_width = $6, reference_height = $7
		WHERE id = $8
		RETURNING %s
	`, printAreaColumns)

	area, err := scanPrintArea(r.db.QueryRowContext(ctx, query,
		req.X,
		req.Y,
		req.Width,
		req.Height,
		req.IsRelativeCoordinates,
		req.ReferenceWidth,
		req.ReferenceHeight,
		areaID,
	))
	if err == sql.ErrNoRows {
		return nil, &apperrors.AreaNotFoundError{AreaID: areaID}
	}
	if err != nil {
		log.Printf("❌ SetAreaGeometry: Update failed: %v", err)
		return nil, fmt.Errorf("failed to update print area geometry: %w", err)
	}

	log.Printf("✅ SetAreaGeometry: Updated area id=%s", area.ID)
	return area, nil
}

// NormalizeSideToRelative converts every print area of a side still stored as
// absolute pixels into percentages of the given reference dimensions.
// Idempotent: areas already stored as relative are skipped untouched.
func (r *PrintAreaRepository) NormalizeSideToRelative(ctx context.Context, sideID string, refWidth, refHeight int) (*models.NormalizeSideResponse, error) {
	log.Printf("🔄 NormalizeSideToRelative: sideId=%s, ref=%dx%d", sideID, refWidth, refHeight)

	if refWidth <= 0 || refHeight <= 0 {
		return nil, &apperrors.InvalidGeometryError{
			Message: "reference dimensions must be positive",
		}
	}

	areas, err := r.ListBySide(ctx, sideID)
	if err != nil {
		return nil, err
	}

	result := &models.NormalizeSideResponse{SideID: sideID, Total: len(areas)}

	for _, area := range areas {
		if area.IsRelativeCoordinates {
			result.Skipped++
			continue
		}

		rect := models.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height}
		converted, err := utils.ToRelative(rect, refWidth, refHeight)
		if err != nil {
			return nil, err
		}

		query := `
			UPDATE print_areas
			SET x = $1, y = $2, width = $3, height = $4,
			    is_relative_coordinates = true, reference_width = $5, reference_height = $6
			WHERE id = $7
		`
		if _, err := r.db.ExecContext(ctx, query,
			converted.X,
			converted.Y,
			converted.Width,
			converted.Height,
			refWidth,
			refHeight,
			area.ID,
		); err != nil {
			log.Printf("❌ NormalizeSideToRelative: Update failed for area %s: %v", area.ID, err)
			return nil, fmt.Errorf("failed to normalize print area %s: %w", area.ID, err)
		}

		result.Converted++
	}

	log.Printf("✅ NormalizeSideToRelative: side=%s converted=%d skipped=%d total=%d",
		sideID, result.Converted, result.Skipped, result.Total)
	return result, nil
}

// Delete removes a print area. Only explicit admin deletes reach this; areas
// are never removed automatically.
func (r *PrintAreaRepository) Delete(ctx context.Context, areaID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM print_areas WHERE id = $1`, areaID)
	if err != nil {
		return fmt.Errorf("failed to delete print area: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return &apperrors.AreaNotFoundError{AreaID: areaID}
	}

	log.Printf("✅ DeletePrintArea: Deleted area id=%s", areaID)
	return nil
}
