package service

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// DownloadService downloads the library images of a Drive folder to local
// disk, optimized for print preparation
// Implements DownloadServiceInterface
type DownloadService struct {
	driveService DriveServiceInterface
}

// NewDownloadService creates a new DownloadService instance
func NewDownloadService(driveService DriveServiceInterface) *DownloadService {
	return &DownloadService{
		driveService: driveService,
	}
}

// Ensure DownloadService implements DownloadServiceInterface
var _ DownloadServiceInterface = (*DownloadService)(nil)

// getDownloadDir returns the download directory path outside the project
func getDownloadDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	downloadDir := filepath.Join(homeDir, "Downloads", "lovilike-library")
	return downloadDir, nil
}

// jpgFileName rewrites an image filename with a .jpg extension, since the
// optimizer always outputs JPEG.
func jpgFileName(fileName string) string {
	ext := filepath.Ext(fileName)
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg":
		fileName = strings.TrimSuffix(fileName, ext)
	}
	return fileName + ".jpg"
}

// DownloadAllImages downloads every image in a Google Drive folder, optimizes
// it and saves it locally.
// Returns: total images found, downloaded count, skipped count, list of
// per-file errors, and a fatal error if the folder could not be listed.
func (ds *DownloadService) DownloadAllImages(folderID string) (int, int, int, []string, error) {
	log.Printf("📥 Starting download process for folder: %s", folderID)

	downloadDir, err := getDownloadDir()
	if err != nil {
		return 0, 0, 0, nil, err
	}

	log.Printf("📁 Download directory: %s", downloadDir)

	if err := os.MkdirAll(downloadDir, 0755); err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to create download directory: %w", err)
	}

	images, err := ds.driveService.ListLibraryImages(folderID)
	if err != nil {
		return 0, 0, 0, nil, fmt.Errorf("failed to list library images from Drive: %w", err)
	}

	log.Printf("📦 Found %d images to download", len(images))

	totalImages := len(images)
	downloaded := 0
	skipped := 0
	var errors []string

	// Track used file names to avoid duplicates within one run
	usedFileNames := make(map[string]bool)

	for _, image := range images {
		fileName := jpgFileName(image.FileName)
		filePath := filepath.Join(downloadDir, fileName)

		if _, err := os.Stat(filePath); err == nil {
			log.Printf("⏭️  Skipping %s (already exists on disk)", fileName)
			skipped++
			continue
		}

		if usedFileNames[fileName] {
			log.Printf("⏭️  Skipping %s (duplicate filename in this session)", fileName)
			skipped++
			continue
		}
		usedFileNames[fileName] = true

		imageData, err := ds.driveService.DownloadImage(image.DriveFileID)
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to download image %s (%s): %v", fileName, image.DriveFileID, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		optimizedData, err := OptimizeImage(imageData, "medium")
		if err != nil {
			errorMsg := fmt.Sprintf("Failed to optimize image %s (%s): %v", fileName, image.DriveFileID, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		if err := os.WriteFile(filePath, optimizedData, 0644); err != nil {
			errorMsg := fmt.Sprintf("Failed to save image %s: %v", fileName, err)
			log.Printf("❌ %s", errorMsg)
			errors = append(errors, errorMsg)
			continue
		}

		log.Printf("✓ Successfully downloaded and saved: %s", filePath)
		downloaded++
	}

	log.Printf("🎉 Download completed: %d downloaded, %d skipped, %d failed out of %d total images",
		downloaded, skipped, len(errors), totalImages)
	return totalImages, downloaded, skipped, errors, nil
}
