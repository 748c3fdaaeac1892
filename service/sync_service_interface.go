package service

import (
	"context"

	"lovilike-backoffice/models"
)

// SyncServiceInterface defines the contract for library synchronization.
// inserted = new rows created, skipped = already existed (by drive_file_id),
// total = total images seen in Drive.
type SyncServiceInterface interface {
	SyncLibraryImages(ctx context.Context, folderID string) (*models.SyncLibraryResponse, error)
}
