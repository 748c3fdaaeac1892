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

// LibraryImageRepository handles database operations for the personalization
// image library
type LibraryImageRepository struct {
	db *sql.DB
}

// NewLibraryImageRepository creates a new LibraryImageRepository
func NewLibraryImageRepository(database *sql.DB) *LibraryImageRepository {
	return &LibraryImageRepository{db: database}
}

// Ensure LibraryImageRepository implements LibraryImageRepositoryInterface
var _ LibraryImageRepositoryInterface = (*LibraryImageRepository)(nil)

// ExistsByDriveFileID checks whether an image was already synced
func (r *LibraryImageRepository) ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM library_images WHERE drive_file_id = $1)`,
		driveFileID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check image existence: %w", err)
	}
	return exists, nil
}

// Insert inserts a newly synced library image
func (r *LibraryImageRepository) Insert(ctx context.Context, image *models.LibraryImage) error {
	image.ID = uuid.NewString()

	query := `
		INSERT INTO library_images (id, drive_file_id, file_name, category, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		image.ID,
		image.DriveFileID,
		image.FileName,
		image.Category,
		image.ImageURL,
	).Scan(&image.CreatedAt)
	if err != nil {
		log.Printf("❌ InsertLibraryImage: Insert failed for drive_file_id=%s: %v", image.DriveFileID, err)
		return fmt.Errorf("failed to insert library image: %w", err)
	}
	image.IsActive = true

	return nil
}

// GetByID retrieves a library image by id
func (r *LibraryImageRepository) GetByID(ctx context.Context, id string) (*models.LibraryImage, error) {
	query := `
		SELECT id, drive_file_id, file_name, category, image_url, is_active, created_at
		FROM library_images
		WHERE id = $1
	`

	var image models.LibraryImage
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&image.ID,
		&image.DriveFileID,
		&image.FileName,
		&image.Category,
		&image.ImageURL,
		&image.IsActive,
		&image.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, apperrors.NewInvalidRequest("library image not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query library image: %w", err)
	}

	return &image, nil
}

// List retrieves active library images, optionally filtered by category
func (r *LibraryImageRepository) List(ctx context.Context, category string) ([]models.LibraryImage, error) {
	query := `
		SELECT id, drive_file_id, file_name, category, image_url, is_active, created_at
		FROM library_images
		WHERE is_active = true
	`
	args := []interface{}{}
	if category != "" {
		query += ` AND category = $1`
		args = append(args, strings.ToUpper(strings.TrimSpace(category)))
	}
	query += ` ORDER BY file_name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query library images: %w", err)
	}
	defer rows.Close()

	var images []models.LibraryImage
	for rows.Next() {
		var image models.LibraryImage
		err := rows.Scan(
			&image.ID,
			&image.DriveFileID,
			&image.FileName,
			&image.Category,
			&image.ImageURL,
			&image.IsActive,
			&image.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan library image: %w", err)
		}
		images = append(images, image)
	}

	return images, rows.Err()
}
