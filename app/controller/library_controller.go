package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
	"lovilike-backoffice/service"
)

// LibraryController handles HTTP requests for the personalization image
// library synced from Google Drive
type LibraryController struct {
	syncService     service.SyncServiceInterface
	downloadService service.DownloadServiceInterface
	driveService    service.DriveServiceInterface
	repository      repository.LibraryImageRepositoryInterface
	folderID        string // default Drive folder holding the library
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(
	syncService service.SyncServiceInterface,
	downloadService service.DownloadServiceInterface,
	driveService service.DriveServiceInterface,
	repo repository.LibraryImageRepositoryInterface,
	folderID string,
) *LibraryController {
	return &LibraryController{
		syncService:     syncService,
		downloadService: downloadService,
		driveService:    driveService,
		repository:      repo,
		folderID:        folderID,
	}
}

// resolveFolderID prefers the folderId query parameter over the configured one
func (c *LibraryController) resolveFolderID(r *http.Request) string {
	if folderID := strings.TrimSpace(r.URL.Query().Get("folderId")); folderID != "" {
		return folderID
	}
	return c.folderID
}

// Sync handles POST /admin/library/sync?folderId=FOLDER_ID
// Pulls new images from the Drive folder into the database.
func (c *LibraryController) Sync(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncLibrary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SyncLibrary: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := c.resolveFolderID(r)
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	result, err := c.syncService.SyncLibraryImages(ctx, folderID)
	if err != nil {
		log.Printf("❌ SyncLibrary: Error syncing library: %v", err)
		http.Error(w, fmt.Sprintf("Failed to sync library: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ SyncLibrary: inserted=%d skipped=%d total=%d", result.Inserted, result.Skipped, result.Total)
	writeJSON(w, http.StatusOK, result)
}

// List handles GET /admin/library/images?category=ANIMALES
func (c *LibraryController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	category := strings.TrimSpace(r.URL.Query().Get("category"))

	ctx := context.Background()
	images, err := c.repository.List(ctx, category)
	if err != nil {
		log.Printf("❌ ListLibraryImages: Error fetching images: %v", err)
		writeError(w, err)
		return
	}
	if images == nil {
		images = []models.LibraryImage{}
	}

	writeJSON(w, http.StatusOK, models.LibraryImageListResponse{Images: images})
}

// GetOptimizedImage handles GET /admin/library/images/:id/image?size=thumb|medium
// Serves the image as optimized JPEG, downloading from Drive and caching on
// first request.
func (c *LibraryController) GetOptimizedImage(w http.ResponseWriter, r *http.Request, imageID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	size := strings.TrimSpace(r.URL.Query().Get("size"))
	if size == "" {
		size = "medium"
	}
	if size != "thumb" && size != "medium" {
		http.Error(w, "Invalid size. Valid sizes: thumb, medium", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	image, err := c.repository.GetByID(ctx, imageID)
	if err != nil {
		log.Printf("❌ GetOptimizedImage: Error fetching image %s: %v", imageID, err)
		writeError(w, err)
		return
	}

	cachePath := service.GetCachePath(image.ID, size)

	var jpegData []byte
	if service.CacheExists(cachePath) {
		jpegData, err = service.ReadFromCache(cachePath)
		if err != nil {
			log.Printf("⚠️  GetOptimizedImage: Cache read failed for %s: %v", cachePath, err)
			jpegData = nil
		}
	}

	if jpegData == nil {
		rawData, err := c.driveService.DownloadImage(image.DriveFileID)
		if err != nil {
			log.Printf("❌ GetOptimizedImage: Error downloading image %s: %v", image.DriveFileID, err)
			http.Error(w, fmt.Sprintf("Failed to download image: %v", err), http.StatusBadGateway)
			return
		}

		jpegData, err = service.OptimizeImage(rawData, size)
		if err != nil {
			log.Printf("❌ GetOptimizedImage: Error optimizing image %s: %v", image.ID, err)
			http.Error(w, fmt.Sprintf("Failed to optimize image: %v", err), http.StatusInternalServerError)
			return
		}

		if err := service.SaveToCache(cachePath, jpegData); err != nil {
			log.Printf("⚠️  GetOptimizedImage: Failed to cache image %s: %v", image.ID, err)
		}
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(jpegData)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(jpegData); err != nil {
		log.Printf("❌ GetOptimizedImage: Error writing image response: %v", err)
	}
}

// DownloadAll handles POST /admin/library/download?folderId=FOLDER_ID
// Downloads every image of the folder to local disk, optimized for print
// preparation.
func (c *LibraryController) DownloadAll(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DownloadLibrary: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	folderID := c.resolveFolderID(r)
	if folderID == "" {
		http.Error(w, "folderId parameter is required", http.StatusBadRequest)
		return
	}

	total, downloaded, skipped, errors, err := c.downloadService.DownloadAllImages(folderID)
	if err != nil {
		log.Printf("❌ DownloadLibrary: Error downloading images: %v", err)
		http.Error(w, fmt.Sprintf("Failed to download images: %v", err), http.StatusInternalServerError)
		return
	}

	if errors == nil {
		errors = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"total":      total,
		"downloaded": downloaded,
		"skipped":    skipped,
		"errors":     errors,
	})
}
