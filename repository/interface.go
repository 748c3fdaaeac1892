package repository

import (
	"context"

	"lovilike-backoffice/models"
)

// ProductRepositoryInterface defines the contract for product and side operations
type ProductRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, activeOnly bool) ([]models.Product, error)
	Update(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id string) error
	CreateSide(ctx context.Context, productID string, req *models.CreateSideRequest) (*models.Side, error)
	GetSide(ctx context.Context, sideID string) (*models.Side, error)
	ListSides(ctx context.Context, productID string) ([]models.Side, error)
	ListPersonalizableForCatalog(ctx context.Context) ([]models.CatalogProduct, error)
}

// PrintAreaRepositoryInterface defines the contract for the print-area registry
type PrintAreaRepositoryInterface interface {
	Create(ctx context.Context, sideID string, req *models.CreatePrintAreaRequest) (*models.PrintArea, error)
	GetByID(ctx context.Context, areaID string) (*models.PrintArea, error)
	ListBySide(ctx context.Context, sideID string) ([]models.PrintArea, error)
	ListByProduct(ctx context.Context, productID string) ([]models.PrintArea, error)
	SetGeometry(ctx context.Context, areaID string, req *models.SetGeometryRequest) (*models.PrintArea, error)
	NormalizeSideToRelative(ctx context.Context, sideID string, refWidth, refHeight int) (*models.NormalizeSideResponse, error)
	Delete(ctx context.Context, areaID string) error
}

// PricingRuleRepositoryInterface defines the contract for personalization
// pricing rule sets, their surcharges and quantity discount tiers
type PricingRuleRepositoryInterface interface {
	CreateRuleSet(ctx context.Context, req *models.PricingRuleSet) (*models.PricingRuleSet, error)
	ListByProduct(ctx context.Context, productID string) ([]models.PricingRuleSet, error)
	GetSurcharges(ctx context.Context, productID string) ([]models.Surcharge, error)
	GetQuantityDiscounts(ctx context.Context, productID string) ([]models.QuantityDiscountRule, error)
	Delete(ctx context.Context, ruleSetID string) error
}

// DiscountCodeRepositoryInterface defines the contract for discount codes
type DiscountCodeRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateDiscountCodeRequest) (*models.DiscountCode, error)
	GetByCode(ctx context.Context, code string) (*models.DiscountCode, error)
	List(ctx context.Context) ([]models.DiscountCode, error)
	IncrementUsage(ctx context.Context, id string) error
	Deactivate(ctx context.Context, id string) error
	CodeExists(ctx context.Context, code string) (bool, error)
}

// OrderRepositoryInterface defines the contract for personalization orders
type OrderRepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, status string) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error)
}

// FinanceTransactionRepositoryInterface defines the contract for finance transactions
type FinanceTransactionRepositoryInterface interface {
	Create(ctx context.Context, req *models.CreateFinanceTransactionRequest) (*models.FinanceTransaction, error)
	List(ctx context.Context, from, to *string) ([]models.FinanceTransaction, error)
}

// LibraryImageRepositoryInterface defines the contract for personalization
// library images synced from Google Drive
type LibraryImageRepositoryInterface interface {
	ExistsByDriveFileID(ctx context.Context, driveFileID string) (bool, error)
	Insert(ctx context.Context, image *models.LibraryImage) error
	GetByID(ctx context.Context, id string) (*models.LibraryImage, error)
	List(ctx context.Context, category string) ([]models.LibraryImage, error)
}
