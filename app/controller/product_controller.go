package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
	"lovilike-backoffice/repository"
)

// ProductController handles HTTP requests for products and their sides
type ProductController struct {
	repository repository.ProductRepositoryInterface
}

// NewProductController creates a new ProductController
func NewProductController(repo repository.ProductRepositoryInterface) *ProductController {
	return &ProductController{
		repository: repo,
	}
}

// Create handles POST /admin/products
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateProduct: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, apperrors.NewInvalidRequest("name is required"))
		return
	}
	if req.BasePrice < 0 {
		writeError(w, apperrors.NewInvalidRequest("basePrice must not be negative"))
		return
	}

	ctx := context.Background()
	product, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateProduct: Error creating product: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreateProduct: Successfully created product id=%s", product.ID)
	writeJSON(w, http.StatusCreated, product)
}

// List handles GET /admin/products?active=true
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	ctx := context.Background()
	products, err := c.repository.List(ctx, activeOnly)
	if err != nil {
		log.Printf("❌ ListProducts: Error fetching products: %v", err)
		writeError(w, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	writeJSON(w, http.StatusOK, models.ProductListResponse{Products: products})
}

// Get handles GET /admin/products/:id
func (c *ProductController) Get(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := context.Background()
	product, err := c.repository.GetByID(ctx, productID)
	if err != nil {
		log.Printf("❌ GetProduct: Error fetching product %s: %v", productID, err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /admin/products/:id
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request, productID string) {
	log.Printf("📥 UpdateProduct: Received %s request to %s", r.Method, r.URL.Path)

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpdateProduct: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	product, err := c.repository.Update(ctx, productID, &req)
	if err != nil {
		log.Printf("❌ UpdateProduct: Error updating product %s: %v", productID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ UpdateProduct: Successfully updated product id=%s", product.ID)
	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /admin/products/:id
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request, productID string) {
	log.Printf("📥 DeleteProduct: Received %s request to %s", r.Method, r.URL.Path)

	ctx := context.Background()
	if err := c.repository.Delete(ctx, productID); err != nil {
		log.Printf("❌ DeleteProduct: Error deleting product %s: %v", productID, err)
		writeError(w, err)
		return
	}

	log.Printf("✅ DeleteProduct: Successfully deleted product id=%s", productID)
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted", "id": productID})
}

// CreateSide handles POST /admin/products/:id/sides
func (c *ProductController) CreateSide(w http.ResponseWriter, r *http.Request, productID string) {
	log.Printf("📥 CreateSide: Received %s request to %s", r.Method, r.URL.Path)

	var req models.CreateSideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateSide: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, apperrors.NewInvalidRequest("name is required"))
		return
	}
	if req.ImageWidth <= 0 || req.ImageHeight <= 0 {
		writeError(w, apperrors.NewInvalidRequest("imageWidth and imageHeight must be positive"))
		return
	}

	ctx := context.Background()
	side, err := c.repository.CreateSide(ctx, productID, &req)
	if err != nil {
		log.Printf("❌ CreateSide: Error creating side: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreateSide: Successfully created side id=%s for product=%s", side.ID, productID)
	writeJSON(w, http.StatusCreated, side)
}

// ListSides handles GET /admin/products/:id/sides
func (c *ProductController) ListSides(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := context.Background()

	if _, err := c.repository.GetByID(ctx, productID); err != nil {
		writeError(w, err)
		return
	}

	sides, err := c.repository.ListSides(ctx, productID)
	if err != nil {
		log.Printf("❌ ListSides: Error fetching sides for product %s: %v", productID, err)
		writeError(w, err)
		return
	}
	if sides == nil {
		sides = []models.Side{}
	}

	writeJSON(w, http.StatusOK, models.SideListResponse{Sides: sides})
}
