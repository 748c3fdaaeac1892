package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"lovilike-backoffice/service"
)

// CatalogController handles HTTP requests for catalog generation
type CatalogController struct {
	catalogService *service.CatalogService
	// Temporary storage for PNG pages (key: sessionID, value: page number to PNG data)
	pngStorage      map[string]map[int][]byte
	pngStorageMutex sync.RWMutex
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
		pngStorage:     make(map[string]map[int][]byte),
	}
}

// validFormats is a map of valid format values
var validFormats = map[string]bool{
	"html": true,
	"pdf":  true,
	"png":  true,
}

// Generate handles GET /admin/catalog?format=pdf|png|html
func (c *CatalogController) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ GenerateCatalog: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		log.Printf("❌ GenerateCatalog: format parameter is required")
		http.Error(w, "format parameter is required. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}
	if !validFormats[format] {
		log.Printf("❌ GenerateCatalog: Invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}

	switch format {
	case "html":
		// Inline images as base64 so the HTML is self-contained
		htmlContent, err := c.catalogService.RenderCatalogHTML(ctx, true)
		if err != nil {
			log.Printf("❌ GenerateCatalog: Error rendering HTML: %v", err)
			http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(htmlContent)); err != nil {
			log.Printf("❌ GenerateCatalog: Error writing HTML response: %v", err)
		}

	case "pdf":
		pdfData, err := c.catalogService.GeneratePDF(ctx)
		if err != nil {
			log.Printf("❌ GenerateCatalog: Error generating PDF: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", "attachment; filename=\"catalogo_lovilike.pdf\"")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfData); err != nil {
			log.Printf("❌ GenerateCatalog: Error writing PDF response: %v", err)
		}

	case "png":
		pngs, err := c.catalogService.GeneratePNG(ctx)
		if err != nil {
			log.Printf("❌ GenerateCatalog: Error generating PNG: %v", err)
			http.Error(w, fmt.Sprintf("Failed to generate PNG: %v", err), http.StatusInternalServerError)
			return
		}

		sessionID := fmt.Sprintf("catalog_%d", time.Now().UnixNano())

		c.pngStorageMutex.Lock()
		c.pngStorage[sessionID] = pngs
		c.pngStorageMutex.Unlock()

		// Sessions expire after 10 minutes
		go func() {
			time.Sleep(10 * time.Minute)
			c.pngStorageMutex.Lock()
			delete(c.pngStorage, sessionID)
			c.pngStorageMutex.Unlock()
		}()

		type PageLink struct {
			Page     int    `json:"page"`
			URL      string `json:"url"`
			Filename string `json:"filename"`
		}

		var pages []PageLink
		for i := 1; i <= len(pngs); i++ {
			if _, exists := pngs[i]; exists {
				downloadPath := fmt.Sprintf("/admin/catalog/png-page?session=%s&page=%d", sessionID, i)
				var filename string
				if len(pngs) == 1 {
					filename = "catalogo_lovilike.png"
				} else {
					filename = fmt.Sprintf("catalogo_lovilike_page_%d.png", i)
				}
				pages = append(pages, PageLink{
					Page:     i,
					URL:      downloadPath,
					Filename: filename,
				})
			}
		}

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"sessionId":  sessionID,
			"totalPages": len(pngs),
			"pages":      pages,
		})
	}
}

// Render handles GET /catalog/render
// Returns the catalog HTML with absolute image URLs; chromedp loads this page
// for PDF/PNG generation.
func (c *CatalogController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ RenderCatalog: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	htmlContent, err := c.catalogService.RenderCatalogHTML(ctx, false)
	if err != nil {
		log.Printf("❌ RenderCatalog: Error rendering HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render catalog: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(htmlContent)); err != nil {
		log.Printf("❌ RenderCatalog: Error writing HTML response: %v", err)
	}
}

// DownloadPNGPage handles GET /admin/catalog/png-page?session=XXX&page=N
// Returns a specific PNG page from temporary storage
func (c *CatalogController) DownloadPNGPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ DownloadPNGPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("session"))
	pageStr := strings.TrimSpace(r.URL.Query().Get("page"))

	if sessionID == "" {
		log.Printf("❌ DownloadPNGPage: session parameter is required")
		http.Error(w, "session parameter is required", http.StatusBadRequest)
		return
	}

	pageNum, err := strconv.Atoi(pageStr)
	if err != nil || pageNum < 1 {
		log.Printf("❌ DownloadPNGPage: Invalid page number: %s", pageStr)
		http.Error(w, "Invalid page number", http.StatusBadRequest)
		return
	}

	c.pngStorageMutex.RLock()
	pngs, exists := c.pngStorage[sessionID]
	c.pngStorageMutex.RUnlock()

	if !exists {
		log.Printf("❌ DownloadPNGPage: Session not found: %s", sessionID)
		http.Error(w, "Session expired or not found", http.StatusNotFound)
		return
	}

	pngData, exists := pngs[pageNum]
	if !exists {
		log.Printf("❌ DownloadPNGPage: Page %d not found in session %s", pageNum, sessionID)
		http.Error(w, fmt.Sprintf("Page %d not found", pageNum), http.StatusNotFound)
		return
	}

	// PNG files start with the fixed 8-byte signature
	pngSignature := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	if len(pngData) < 8 || !equalBytes(pngData[:8], pngSignature) {
		log.Printf("❌ DownloadPNGPage: Invalid PNG data for page %d", pageNum)
		http.Error(w, "Invalid PNG data", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("catalogo_lovilike_page_%d.png", pageNum)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(pngData)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	w.WriteHeader(http.StatusOK)

	n, err := w.Write(pngData)
	if err != nil {
		log.Printf("❌ DownloadPNGPage: Error writing PNG response: %v", err)
		return
	}
	if n != len(pngData) {
		log.Printf("⚠️ DownloadPNGPage: Partial write: wrote %d of %d bytes", n, len(pngData))
	}
}

// equalBytes compares two byte slices
func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
