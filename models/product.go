package models

// Product represents a sellable product in the database
type Product struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	BasePrice        int64  `json:"basePrice"` // price in euro cents
	IsPersonalizable bool   `json:"isPersonalizable"`
	IsActive         bool   `json:"isActive"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// CreateProductRequest represents the request body for creating a product
// Example: {
//   "name": "Camiseta básica",
//   "slug": "camiseta-basica",
//   "basePrice": 1000,
//   "isPersonalizable": true
// }
type CreateProductRequest struct {
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	BasePrice        int64  `json:"basePrice"`
	IsPersonalizable bool   `json:"isPersonalizable"`
}

// UpdateProductRequest represents the request body for updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name             *string `json:"name,omitempty"`
	Slug             *string `json:"slug,omitempty"`
	BasePrice        *int64  `json:"basePrice,omitempty"`
	IsPersonalizable *bool   `json:"isPersonalizable,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

// ProductListResponse wraps a list of products
type ProductListResponse struct {
	Products []Product `json:"products"`
}

// Side represents one printable face of a product (front, back, sleeve...)
type Side struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	ImageURL    string `json:"imageUrl"`
	ImageWidth  int    `json:"imageWidth"`  // pixel width of the reference image
	ImageHeight int    `json:"imageHeight"` // pixel height of the reference image
	SortOrder   int    `json:"sortOrder"`
	CreatedAt   string `json:"createdAt"`
}

// CreateSideRequest represents the request body for creating a product side
type CreateSideRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	ImageURL    string `json:"imageUrl"`
	ImageWidth  int    `json:"imageWidth"`
	ImageHeight int    `json:"imageHeight"`
	SortOrder   int    `json:"sortOrder"`
}

// SideListResponse wraps the sides of a product
type SideListResponse struct {
	Sides []Side `json:"sides"`
}
