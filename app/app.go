package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"lovilike-backoffice/app/controller"
	"lovilike-backoffice/app/router"
	"lovilike-backoffice/config"
	"lovilike-backoffice/db"
	"lovilike-backoffice/db/migrations"
	"lovilike-backoffice/pricing"
	"lovilike-backoffice/repository"
	"lovilike-backoffice/service"
)

// Initialize wires the application together and registers the routes.
// It returns the database handle so the caller can close it on shutdown.
func Initialize(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	database, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.RunMigrations {
		if err := migrations.Run(ctx, database); err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		log.Printf("✓ Database migrations applied")
	}

	// Repositories
	productRepo := repository.NewProductRepository(database)
	printAreaRepo := repository.NewPrintAreaRepository(database)
	pricingRuleRepo := repository.NewPricingRuleRepository(database)
	discountCodeRepo := repository.NewDiscountCodeRepository(database)
	orderRepo := repository.NewOrderRepository(database)
	financeRepo := repository.NewFinanceTransactionRepository(database)
	libraryImageRepo := repository.NewLibraryImageRepository(database)

	calculator := pricing.NewCalculator(productRepo, printAreaRepo, pricingRuleRepo)

	// Drive-backed services are optional: without credentials the library
	// endpoints are registered but fail per request.
	var driveService service.DriveServiceInterface
	if cfg.DriveCredentials != "" {
		driveService, err = service.NewDriveService(cfg.DriveCredentials)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize drive service: %w", err)
		}
	} else {
		log.Printf("⚠️  GOOGLE_APPLICATION_CREDENTIALS not set, image library sync is disabled")
		driveService = service.UnconfiguredDriveService{}
	}

	syncService := service.NewSyncService(driveService, libraryImageRepo)
	downloadService := service.NewDownloadService(driveService)
	catalogService := service.NewCatalogService(productRepo, cfg.BaseURL)

	if err := service.EnsureCacheDir(); err != nil {
		return nil, fmt.Errorf("failed to prepare image cache: %w", err)
	}

	controllers := &router.Controllers{
		Personalization: controller.NewPersonalizationController(calculator, pricingRuleRepo, productRepo),
		Product:         controller.NewProductController(productRepo),
		PrintArea:       controller.NewPrintAreaController(printAreaRepo),
		PricingRule:     controller.NewPricingRuleController(pricingRuleRepo),
		DiscountCode:    controller.NewDiscountCodeController(discountCodeRepo),
		Order:           controller.NewOrderController(orderRepo, calculator, discountCodeRepo, financeRepo),
		Finance:         controller.NewFinanceTransactionController(financeRepo),
		Catalog:         controller.NewCatalogController(catalogService),
		Library:         controller.NewLibraryController(syncService, downloadService, driveService, libraryImageRepo, cfg.DriveLibraryFolder),
		Export:          controller.NewExportController(productRepo, orderRepo, financeRepo),
	}

	router.SetupRoutes(controllers)

	return database, nil
}
