package service

import "lovilike-backoffice/models"

// DriveServiceInterface defines the contract for Google Drive operations
type DriveServiceInterface interface {
	ListLibraryImages(folderID string) ([]models.LibraryImage, error)
	DownloadImage(fileID string) ([]byte, error)
}
