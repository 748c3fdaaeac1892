package service

import (
	"context"
	"fmt"
	"log"

	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// SyncService handles synchronization between the Google Drive image library
// folder and PostgreSQL
// Implements SyncServiceInterface
type SyncService struct {
	driveService DriveServiceInterface
	repository   repository.LibraryImageRepositoryInterface
}

// NewSyncService creates a new SyncService
func NewSyncService(driveService DriveServiceInterface, repo repository.LibraryImageRepositoryInterface) *SyncService {
	return &SyncService{
		driveService: driveService,
		repository:   repo,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncLibraryImages synchronizes library images from Google Drive to
// PostgreSQL. Already-synced files (matched by drive_file_id) are skipped, so
// the sync is safe to re-run.
func (s *SyncService) SyncLibraryImages(ctx context.Context, folderID string) (*models.SyncLibraryResponse, error) {
	log.Printf("🔄 Starting library synchronization for folder: %s", folderID)

	driveImages, err := s.driveService.ListLibraryImages(folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list library images from Drive: %w", err)
	}

	log.Printf("📦 Processing %d library images from Google Drive", len(driveImages))

	result := &models.SyncLibraryResponse{
		Total:  len(driveImages),
		Images: driveImages,
	}

	for i := range driveImages {
		image := &driveImages[i]

		exists, err := s.repository.ExistsByDriveFileID(ctx, image.DriveFileID)
		if err != nil {
			log.Printf("❌ Error checking existence for drive_file_id: %s: %v", image.DriveFileID, err)
			continue
		}

		if exists {
			log.Printf("⏭️  Skipping drive_file_id: %s (already exists in database)", image.DriveFileID)
			result.Skipped++
			continue
		}

		log.Printf("🆕 New file detected (drive_file_id: %s, category: %s)", image.DriveFileID, image.Category)

		if err := s.repository.Insert(ctx, image); err != nil {
			log.Printf("❌ Error inserting drive_file_id %s into database: %v", image.DriveFileID, err)
			continue
		}

		log.Printf("✅ Successfully processed (drive_file_id: %s)", image.DriveFileID)
		result.Inserted++
	}

	log.Printf("🎉 Synchronization completed: %d inserted, %d skipped, %d total processed",
		result.Inserted, result.Skipped, result.Total)
	return result, nil
}
