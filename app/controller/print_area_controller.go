package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// PrintAreaController handles HTTP requests for the print-area registry
type PrintAreaController struct {
	repository repository.PrintAreaRepositoryInterface
}

// NewPrintAreaController creates a new PrintAreaController
func NewPrintAreaController(repo repository.PrintAreaRepositoryInterface) *PrintAreaController {
	return &PrintAreaController{
		repository: repo,
	}
}

// Create handles POST /admin/sides/:id/print-areas
// Example request:
// {
//   "name": "ESCUDO",
//   "displayName": "Escudo pecho",
//   "x": 10, "y": 15, "width": 25, "height": 20,
//   "isRelativeCoordinates": true,
//   "referenceWidth": 800, "referenceHeight": 600,
//   "printingMethod": "DTF"
// }
func (c *PrintAreaController) Create(w http.ResponseWriter, r *http.Request, sideID string) {
	log.Printf("📥 CreatePrintArea: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreatePrintAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreatePrintArea: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	area, err := c.repository.Create(ctx, sideID, &req)
	if err != nil {
		log.Printf("❌ CreatePrintArea: Error creating print area: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreatePrintArea: Successfully created area id=%s side=%s", area.ID, sideID)
	writeJSON(w, http.StatusCreated, area)
}

// ListBySide handles GET /admin/sides/:id/print-areas
func (c *PrintAreaController) ListBySide(w http.ResponseWriter, r *http.Request, sideID string) {
	ctx := context.Background()
	areas, err := c.repository.ListBySide(ctx, sideID)
	if err != nil {
		log.Printf("❌ ListPrintAreas: Error fetching areas for side %s: %v", sideID, err)
		writeError(w, err)
		return
	}
	if areas == nil {
		areas = []models.PrintArea{}
	}

	writeJSON(w, http.StatusOK, models.PrintAreaListResponse{Areas: areas})
}

// ListByProduct handles GET /admin/products/:id/print-areas
func (c *PrintAreaController) ListByProduct(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := context.Background()
	areas, err := c.repository.ListByProduct(ctx, productID)
	if err != nil {
		log.Printf("❌ ListPrintAreasByProduct: Error fetching areas for product %s: %v", productID, err)
		writeError(w, err)
		return
	}
	if areas == nil {
		areas = []models.PrintArea{}
	}

	writeJSON(w, http.StatusOK, models.PrintAreaListResponse{Areas: areas})
}

// Get handles GET /admin/print-areas/:id
func (c *PrintAreaController) Get(w http.ResponseWriter, r *http.Request, areaID string) {
	ctx := context.Background()
	area, err := c.repository.GetByID(ctx, areaID)
	if err != nil {
		log.Printf("❌ GetPrintArea: Error fetching area %s: %v", areaID, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, area)
}

// SetGeometry handles PUT /admin/print-areas/:id/geometry
// Overwrites the area rectangle. Relative geometry is validated against the
// 0-100 percentage bounds before anything is written.
func (c *PrintAreaController) SetGeometry(w http.ResponseWriter, r *http.Request, areaID string) {
	log.Printf("📥 SetGeometry: Received %s request to %s", r.Method, r.URL.Path)

	var req models.SetGeometryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SetGeometry: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	area, err := c.repository.SetGeometry(ctx, areaID, &req)
	if err != nil {
		log.Printf("❌ SetGeometry: Error updating geometry for area %s: %v", areaID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ SetGeometry: Successfully updated area id=%s", areaID)
	writeJSON(w, http.StatusOK, area)
}

// NormalizeSide handles POST /admin/sides/:id/normalize
// Converts every absolute area of the side to relative coordinates. Already
// relative areas are skipped, so the call is idempotent.
func (c *PrintAreaController) NormalizeSide(w http.ResponseWriter, r *http.Request, sideID string) {
	log.Printf("📥 NormalizeSide: Received %s request to %s", r.Method, r.URL.Path)

	var req models.NormalizeSideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ NormalizeSide: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	result, err := c.repository.NormalizeSideToRelative(ctx, sideID, req.ReferenceWidth, req.ReferenceHeight)
	if err != nil {
		log.Printf("❌ NormalizeSide: Error normalizing side %s: %v", sideID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ NormalizeSide: side=%s converted=%d skipped=%d", sideID, result.Converted, result.Skipped)
	writeJSON(w, http.StatusOK, result)
}

// Delete handles DELETE /admin/print-areas/:id
func (c *PrintAreaController) Delete(w http.ResponseWriter, r *http.Request, areaID string) {
	log.Printf("📥 DeletePrintArea: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()
	if err := c.repository.Delete(ctx, areaID); err != nil {
		log.Printf("❌ DeletePrintArea: Error deleting area %s: %v", areaID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ DeletePrintArea: Successfully deleted area id=%s", areaID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": areaID})
}
