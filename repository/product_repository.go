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

// ProductRepository handles database operations for products and their sides
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(database *sql.DB) *ProductRepository {
	return &ProductRepository{db: database}
}

// Ensure ProductRepository implements ProductRepositoryInterface
var _ ProductRepositoryInterface = (*ProductRepository)(nil)

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	log.Printf("📦 CreateProduct: name=%s, slug=%s, basePrice=%d", req.Name, req.Slug, req.BasePrice)

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewInvalidRequest("name is required")
	}
	if strings.TrimSpace(req.Slug) == "" {
		return nil, apperrors.NewInvalidRequest("slug is required")
	}
	if req.BasePrice < 0 {
		return nil, apperrors.NewInvalidRequest("basePrice must not be negative")
	}

	query := `
		INSERT INTO products (id, name, slug, base_price, is_personalizable)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, slug, base_price, is_personalizable, is_active, created_at, updated_at
	`

	var product models.Product
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		req.Name,
		req.Slug,
		req.BasePrice,
		req.IsPersonalizable,
	).Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.BasePrice,
		&product.IsPersonalizable,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateProduct: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("✅ CreateProduct: Created product id=%s", product.ID)
	return &product, nil
}

// GetByID retrieves a product by id
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `
		SELECT id, name, slug, base_price, is_personalizable, is_active, created_at, updated_at
		FROM products
		WHERE id = $1
	`

	var product models.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.BasePrice,
		&product.IsPersonalizable,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &apperrors.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return &product, nil
}

// List retrieves all products, optionally only active ones
func (r *ProductRepository) List(ctx context.Context, activeOnly bool) ([]models.Product, error) {
	query := `
		SELECT id, name, slug, base_price, is_personalizable, is_active, created_at, updated_at
		FROM products
	`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var product models.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Slug,
			&product.BasePrice,
			&product.IsPersonalizable,
			&product.IsActive,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// Update applies the non-nil fields of the request to a product
func (r *ProductRepository) Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {
	log.Printf("📦 UpdateProduct: id=%s", id)

	// Build the SET clause dynamically from the provided fields
	sets := []string{"updated_at = now()"}
	args := []interface{}{}
	argPos := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if req.Name != nil {
		addSet("name", *req.Name)
	}
	if req.Slug != nil {
		addSet("slug", *req.Slug)
	}
	if req.BasePrice != nil {
		if *req.BasePrice < 0 {
			return nil, apperrors.NewInvalidRequest("basePrice must not be negative")
		}
		addSet("base_price", *req.BasePrice)
	}
	if req.IsPersonalizable != nil {
		addSet("is_personalizable", *req.IsPersonalizable)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	query := fmt.Sprintf(`
		UPDATE products SET %s
		WHERE id = $%d
		RETURNING id, name, slug, base_price, is_personalizable, is_active, created_at, updated_at
	`, strings.Join(sets, ", "), argPos)
	args = append(args, id)

	var product models.Product
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.BasePrice,
		&product.IsPersonalizable,
		&product.IsActive,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &apperrors.ProductNotFoundError{ProductID: id}
	}
	if err != nil {
		log.Printf("❌ UpdateProduct: Update failed: %v", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	log.Printf("✅ UpdateProduct: Updated product id=%s", product.ID)
	return &product, nil
}

// Delete removes a product. Sides, print areas and pricing rules cascade.
func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return &apperrors.ProductNotFoundError{ProductID: id}
	}

	log.Printf("✅ DeleteProduct: Deleted product id=%s", id)
	return nil
}

// CreateSide creates a new printable side for a product
func (r *ProductRepository) CreateSide(ctx context.Context, productID string, req *models.CreateSideRequest) (*models.Side, error) {
	log.Printf("📦 CreateSide: productId=%s, name=%s", productID, req.Name)

	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewInvalidRequest("side name is required")
	}

	// Verify the product exists before inserting
	if _, err := r.GetByID(ctx, productID); err != nil {
		return nil, err
	}

	displayName := req.DisplayName
	if displayName == "" {
		displayName = utils.MapSideName(req.Name)
	}

	query := `
		INSERT INTO product_sides (id, product_id, name, display_name, image_url, image_width, image_height, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, product_id, name, display_name, image_url, image_width, image_height, sort_order, created_at
	`

	var side models.Side
	err := r.db.QueryRowContext(ctx, query,
		uuid.NewString(),
		productID,
		req.Name,
		displayName,
		req.ImageURL,
		req.ImageWidth,
		req.ImageHeight,
		req.SortOrder,
	).Scan(
		&side.ID,
		&side.ProductID,
		&side.Name,
		&side.DisplayName,
		&side.ImageURL,
		&side.ImageWidth,
		&side.ImageHeight,
		&side.SortOrder,
		&side.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateSide: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert side: %w", err)
	}

	log.Printf("✅ CreateSide: Created side id=%s", side.ID)
	return &side, nil
}

// GetSide retrieves a side by id
func (r *ProductRepository) GetSide(ctx context.Context, sideID string) (*models.Side, error) {
	query := `
		SELECT id, product_id, name, display_name, image_url, image_width, image_height, sort_order, created_at
		FROM product_sides
		WHERE id = $1
	`

	var side models.Side
	err := r.db.QueryRowContext(ctx, query, sideID).Scan(
		&side.ID,
		&side.ProductID,
		&side.Name,
		&side.DisplayName,
		&side.ImageURL,
		&side.ImageWidth,
		&side.ImageHeight,
		&side.SortOrder,
		&side.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &apperrors.AreaNotFoundError{AreaID: sideID}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query side: %w", err)
	}

	return &side, nil
}

// ListSides retrieves the sides of a product ordered for the editor
func (r *ProductRepository) ListSides(ctx context.Context, productID string) ([]models.Side, error) {
	query := `
		SELECT id, product_id, name, display_name, image_url, image_width, image_height, sort_order, created_at
		FROM product_sides
		WHERE product_id = $1
		ORDER BY sort_order ASC, id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to query sides: %w", err)
	}
	defer rows.Close()

	var sides []models.Side
	for rows.Next() {
		var side models.Side
		err := rows.Scan(
			&side.ID,
			&side.ProductID,
			&side.Name,
			&side.DisplayName,
			&side.ImageURL,
			&side.ImageWidth,
			&side.ImageHeight,
			&side.SortOrder,
			&side.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan side: %w", err)
		}
		sides = append(sides, side)
	}

	return sides, rows.Err()
}

// ListPersonalizableForCatalog retrieves active personalizable products with
// side/area counts for the catalog PDF
func (r *ProductRepository) ListPersonalizableForCatalog(ctx context.Context) ([]models.CatalogProduct, error) {
	log.Printf("🔍 ListPersonalizableForCatalog: Fetching catalog products")

	query := `
		SELECT p.id, p.name, p.slug, p.base_price,
		       COALESCE(MIN(ps.image_url), '') as image_url,
		       COUNT(DISTINCT ps.id) as side_count,
		       COUNT(DISTINCT pa.id) as area_count
		FROM products p
		LEFT JOIN product_sides ps ON ps.product_id = p.id
		LEFT JOIN print_areas pa ON pa.side_id = ps.id AND pa.is_active = true
		WHERE p.is_active = true
		  AND p.is_personalizable = true
		GROUP BY p.id, p.name, p.slug, p.base_price
		ORDER BY p.name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Error querying catalog products: %v", err)
		return nil, fmt.Errorf("failed to query catalog products: %w", err)
	}
	defer rows.Close()

	var products []models.CatalogProduct
	for rows.Next() {
		var product models.CatalogProduct
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Slug,
			&product.BasePrice,
			&product.ImageURL,
			&product.SideCount,
			&product.AreaCount,
		)
		if err != nil {
			log.Printf("❌ Error scanning catalog product: %v", err)
			continue
		}

		product.PriceLabel = utils.FormatEUR(product.BasePrice)
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog products: %w", err)
	}

	log.Printf("✓ Successfully fetched %d catalog products", len(products))
	return products, nil
}
