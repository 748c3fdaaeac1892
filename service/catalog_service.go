package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// CatalogService renders the personalizable product catalog as HTML and turns
// it into PDF or PNG pages with headless Chrome
type CatalogService struct {
	products repository.ProductRepositoryInterface
	baseURL  string // Base URL for image endpoints (e.g., "http://localhost:8080")
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(products repository.ProductRepositoryInterface, baseURL string) *CatalogService {
	return &CatalogService{
		products: products,
		baseURL:  baseURL,
	}
}

// fetchImageAsBase64 fetches an image and converts it to base64
func (s *CatalogService) fetchImageAsBase64(imageURL string) (string, error) {
	// If imageURL is a path, prepend baseURL; full URLs are used as-is
	var fullURL string
	if imageURL[0] == '/' {
		fullURL = s.baseURL + imageURL
	} else {
		fullURL = imageURL
	}

	resp, err := http.Get(fullURL)
	if err != nil {
		return "", fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(imageData), nil
}

// convertProductsToBase64 inlines product images as base64 for direct HTML view
func (s *CatalogService) convertProductsToBase64(products []models.CatalogProduct) {
	for i := range products {
		if products[i].ImageURL != "" {
			encoded, err := s.fetchImageAsBase64(products[i].ImageURL)
			if err != nil {
				log.Printf("⚠️  Warning: Failed to fetch image for product %s: %v", products[i].ID, err)
				continue
			}
			products[i].ImageBase64 = encoded
		}
	}
}

// staticAssetURL resolves a static catalog asset (logo, background, intro) to
// an absolute URL, trying the known image extensions
func (s *CatalogService) staticAssetURL(name string) string {
	extensions := []string{".png", ".jpg", ".jpeg"}
	for _, ext := range extensions {
		if _, err := os.Stat(filepath.Join("static", "catalog", name+ext)); err == nil {
			return fmt.Sprintf("%s/static/catalog/%s%s", s.baseURL, name, ext)
		}
	}
	return ""
}

// paginateProducts splits products into pages of 9 each
func paginateProducts(products []models.CatalogProduct) [][]models.CatalogProduct {
	const productsPerPage = 9
	var pages [][]models.CatalogProduct

	for i := 0; i < len(products); i += productsPerPage {
		end := i + productsPerPage
		if end > len(products) {
			end = len(products)
		}
		pages = append(pages, products[i:end])
	}

	return pages
}

// RenderCatalogHTML renders the catalog HTML template for the personalizable
// products. useBase64 inlines images for direct browser viewing; PDF/PNG
// rendering fetches them over HTTP instead.
func (s *CatalogService) RenderCatalogHTML(ctx context.Context, useBase64 bool) (string, error) {
	products, err := s.products.ListPersonalizableForCatalog(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load catalog products: %w", err)
	}

	if useBase64 {
		s.convertProductsToBase64(products)
	}

	pages := paginateProducts(products)

	templateData := struct {
		Pages         [][]models.CatalogProduct
		LogoURL       string
		BackgroundURL string
		IntroURL      string
	}{
		Pages:         pages,
		LogoURL:       s.staticAssetURL("logo"),
		BackgroundURL: s.staticAssetURL("background"),
		IntroURL:      s.staticAssetURL("intro"),
	}

	templatePath := filepath.Join("templates", "catalog.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF generates the catalog PDF from the rendered HTML using chromedp
func (s *CatalogService) GeneratePDF(ctx context.Context) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	if err := chromedp.Run(chromedpCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		return page.Enable().Do(ctx)
	})); err != nil {
		log.Printf("⚠️  GeneratePDF: failed to enable page domain: %v", err)
	}

	renderURL := fmt.Sprintf("%s/catalog/render", s.baseURL)

	var pdfBuf []byte

	// 210mm = 794px at 96 DPI; use a tall viewport so every page lays out
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		// Wait for fonts and images to load
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.Evaluate(`
			document.documentElement.style.width = '210mm';
			document.documentElement.style.height = 'auto';
			document.documentElement.style.minHeight = '297mm';
			document.body.style.width = '210mm';
			document.body.style.height = 'auto';
			document.body.style.minHeight = '297mm';
		`, nil),
		chromedp.Sleep(1*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait; page breaks come from CSS page-break-after
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // 210mm in inches
				WithPaperHeight(11.7). // 297mm in inches
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}

// GeneratePNG renders every catalog page as a PNG screenshot.
// Returns a map of page number to PNG data.
func (s *CatalogService) GeneratePNG(ctx context.Context) (map[int][]byte, error) {
	products, err := s.products.ListPersonalizableForCatalog(ctx)
	var expectedPages int
	if err != nil {
		expectedPages = 0
	} else {
		// Ceiling division for product pages (9 per page) + 1 intro page
		expectedPages = (len(products)+8)/9 + 1
	}

	// Screenshotting page by page is slower than printing, so scale the
	// timeout with the expected page count, capped to keep requests bounded.
	timeout := 30 * time.Second
	if expectedPages > 1 {
		timeout = time.Duration(20+expectedPages*10) * time.Second
		if timeout > 3*time.Minute {
			timeout = 3 * time.Minute
		}
	}
	log.Printf("📸 GeneratePNG: expectedPages=%d timeout=%s", expectedPages, timeout)

	ctxTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctxTimeout, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/catalog/render", s.baseURL)

	var pageCountVal float64
	err = chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 5000),
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`
			(function() {
				return Promise.all([
					document.fonts.ready,
					Promise.all(Array.from(document.querySelectorAll('img')).map(img => {
						return new Promise((resolve) => {
							if (img.complete && img.naturalWidth > 0 && img.naturalHeight > 0) {
								resolve();
								return;
							}
							const timeout = setTimeout(() => resolve(), 5000);
							img.onload = () => { clearTimeout(timeout); resolve(); };
							img.onerror = () => { clearTimeout(timeout); resolve(); };
						});
					}))
				]);
			})();
		`, nil),
		chromedp.Evaluate(`
			document.documentElement.style.width = '210mm';
			document.documentElement.style.height = 'auto';
			document.body.style.width = '210mm';
			document.body.style.height = 'auto';
		`, nil),
		chromedp.Sleep(2*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight);`, nil),
		chromedp.Sleep(1*time.Second),
		chromedp.Evaluate(`window.scrollTo(0, 0);`, nil),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.Evaluate(`document.querySelectorAll('.page').length`, &pageCountVal),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	pageCount := int(pageCountVal)
	if pageCount == 0 {
		return nil, fmt.Errorf("no pages found in HTML")
	}
	if expectedPages > 0 && pageCount != expectedPages {
		pageCount = expectedPages
	}
	log.Printf("📄 GeneratePNG: detectedPages=%d (expected=%d)", pageCount, expectedPages)

	// Single page is just one screenshot
	if pageCount == 1 {
		var buf []byte
		err = chromedp.Run(chromedpCtx,
			chromedp.EmulateViewport(794, 1123),
			chromedp.Evaluate(`
				document.documentElement.style.width = '210mm';
				document.documentElement.style.height = '297mm';
				document.body.style.width = '210mm';
				document.body.style.height = '297mm';
			`, nil),
			chromedp.Sleep(1*time.Second),
			chromedp.CaptureScreenshot(&buf),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to capture screenshot: %w", err)
		}
		return map[int][]byte{1: buf}, nil
	}

	pngs := make(map[int][]byte)
	missingPages := make([]int, 0)
	const maxAttemptsPerPage = 2

	restoreAllPages := func() {
		_ = chromedp.Run(chromedpCtx,
			chromedp.Evaluate(`
				(function() {
					const pages = document.querySelectorAll('.page');
					pages.forEach(page => {
						page.style.display = 'flex';
						page.style.visibility = 'visible';
					});
					document.documentElement.style.height = 'auto';
					document.documentElement.style.overflow = '';
					document.body.style.height = 'auto';
					document.body.style.overflow = '';
				})();
			`, nil),
		)
	}

	// Capture each page individually by hiding the rest
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		var buf []byte
		var lastErr error

		for attempt := 1; attempt <= maxAttemptsPerPage; attempt++ {
			buf = nil
			lastErr = chromedp.Run(chromedpCtx,
				chromedp.EmulateViewport(794, 1123), // 210mm x 297mm
				chromedp.Evaluate(fmt.Sprintf(`
					(function() {
						const pages = document.querySelectorAll('.page');
						if (pages.length === 0) {
							return 0;
						}
						pages.forEach((page, index) => {
							if (index === %d - 1) {
								page.style.display = 'flex';
								page.style.visibility = 'visible';
								page.style.position = 'relative';
							} else {
								page.style.display = 'none';
								page.style.visibility = 'hidden';
							}
						});
						document.documentElement.style.width = '210mm';
						document.documentElement.style.height = '297mm';
						document.documentElement.style.overflow = 'hidden';
						document.body.style.width = '210mm';
						document.body.style.height = '297mm';
						document.body.style.overflow = 'hidden';
						return pages.length;
					})();
				`, pageNum), nil),
				chromedp.Sleep(900*time.Millisecond),
				chromedp.CaptureScreenshot(&buf),
			)

			if lastErr == nil && len(buf) > 0 {
				break
			}

			log.Printf("⚠️ GeneratePNG: failed page=%d attempt=%d/%d err=%v buf=%d", pageNum, attempt, maxAttemptsPerPage, lastErr, len(buf))
			restoreAllPages()
			time.Sleep(400 * time.Millisecond)
		}

		if lastErr != nil || len(buf) == 0 {
			missingPages = append(missingPages, pageNum)
			restoreAllPages()
			continue
		}

		pngs[pageNum] = buf

		if pageNum < pageCount {
			restoreAllPages()
		}
	}

	if len(pngs) == 0 {
		return nil, fmt.Errorf("failed to capture any pages")
	}
	if len(missingPages) > 0 {
		return nil, fmt.Errorf("failed to capture all pages: missing=%v captured=%d/%d", missingPages, len(pngs), pageCount)
	}

	return pngs, nil
}
