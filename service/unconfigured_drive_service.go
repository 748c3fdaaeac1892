package service

import (
	"fmt"

	"lovilike-backoffice/models"
)

// UnconfiguredDriveService stands in for the Drive client when no credentials
// are configured. Every call fails with an explanatory error.
type UnconfiguredDriveService struct{}

var _ DriveServiceInterface = UnconfiguredDriveService{}

func (UnconfiguredDriveService) ListLibraryImages(folderID string) ([]models.LibraryImage, error) {
	return nil, fmt.Errorf("google drive is not configured: set GOOGLE_APPLICATION_CREDENTIALS")
}

func (UnconfiguredDriveService) DownloadImage(fileID string) ([]byte, error) {
	return nil, fmt.Errorf("google drive is not configured: set GOOGLE_APPLICATION_CREDENTIALS")
}
