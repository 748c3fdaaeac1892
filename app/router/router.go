package router

import (
	"net/http"
	"strings"

	"lovilike-backoffice/app/controller"
)

type Controllers struct {
	Personalization *controller.PersonalizationController
	Product         *controller.ProductController
	PrintArea       *controller.PrintAreaController
	PricingRule     *controller.PricingRuleController
	DiscountCode    *controller.DiscountCodeController
	Order           *controller.OrderController
	Finance         *controller.FinanceTransactionController
	Catalog         *controller.CatalogController
	Library         *controller.LibraryController
	Export          *controller.ExportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Static assets (catalog logo, background, intro)
	http.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Storefront pricing endpoint
	http.HandleFunc("/personalization/price", controllers.Personalization.Price)

	// Storefront quantity discount tiers: GET /products/:id/quantity-discounts
	http.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/quantity-discounts") {
			controllers.Personalization.QuantityDiscounts(w, r)
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Catalog render page (loaded by headless Chrome for PDF/PNG)
	http.HandleFunc("/catalog/render", controllers.Catalog.Render)

	// Products
	http.HandleFunc("/admin/products", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Product.Create(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Product.List(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Product subresources and product by id
	http.HandleFunc("/admin/products/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/products/")

		// Sides: POST/GET /admin/products/:id/sides
		if strings.HasSuffix(path, "/sides") {
			productID := strings.TrimSuffix(path, "/sides")
			if r.Method == http.MethodPost {
				controllers.Product.CreateSide(w, r, productID)
			} else if r.Method == http.MethodGet {
				controllers.Product.ListSides(w, r, productID)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Print areas of every side: GET /admin/products/:id/print-areas
		if strings.HasSuffix(path, "/print-areas") {
			productID := strings.TrimSuffix(path, "/print-areas")
			if r.Method == http.MethodGet {
				controllers.PrintArea.ListByProduct(w, r, productID)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Pricing rule sets: POST/GET /admin/products/:id/pricing-rule-sets
		if strings.HasSuffix(path, "/pricing-rule-sets") {
			productID := strings.TrimSuffix(path, "/pricing-rule-sets")
			if r.Method == http.MethodPost {
				controllers.PricingRule.Create(w, r, productID)
			} else if r.Method == http.MethodGet {
				controllers.PricingRule.ListByProduct(w, r, productID)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Product by id
		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			controllers.Product.Get(w, r, path)
		case http.MethodPut:
			controllers.Product.Update(w, r, path)
		case http.MethodDelete:
			controllers.Product.Delete(w, r, path)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Side subresources
	http.HandleFunc("/admin/sides/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/sides/")

		// Print areas: POST/GET /admin/sides/:id/print-areas
		if strings.HasSuffix(path, "/print-areas") {
			sideID := strings.TrimSuffix(path, "/print-areas")
			if r.Method == http.MethodPost {
				controllers.PrintArea.Create(w, r, sideID)
			} else if r.Method == http.MethodGet {
				controllers.PrintArea.ListBySide(w, r, sideID)
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Normalize to relative: POST /admin/sides/:id/normalize
		if strings.HasSuffix(path, "/normalize") {
			if r.Method == http.MethodPost {
				controllers.PrintArea.NormalizeSide(w, r, strings.TrimSuffix(path, "/normalize"))
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		http.Error(w, "Not found", http.StatusNotFound)
	})

	// Print areas by id
	http.HandleFunc("/admin/print-areas/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/print-areas/")

		// Geometry overwrite: PUT /admin/print-areas/:id/geometry
		if strings.HasSuffix(path, "/geometry") {
			if r.Method == http.MethodPut {
				controllers.PrintArea.SetGeometry(w, r, strings.TrimSuffix(path, "/geometry"))
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if strings.Contains(path, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodGet:
			controllers.PrintArea.Get(w, r, path)
		case http.MethodDelete:
			controllers.PrintArea.Delete(w, r, path)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Pricing rule set by id
	http.HandleFunc("/admin/pricing-rule-sets/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/pricing-rule-sets/")
		if r.Method == http.MethodDelete && !strings.Contains(path, "/") {
			controllers.PricingRule.Delete(w, r, path)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Discount codes
	http.HandleFunc("/admin/discount-codes", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.DiscountCode.Create(w, r)
		} else if r.Method == http.MethodGet {
			controllers.DiscountCode.List(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/discount-codes/validate", controllers.DiscountCode.Validate)
	http.HandleFunc("/admin/discount-codes/generate-code", controllers.DiscountCode.GenerateCode)
	http.HandleFunc("/admin/discount-codes/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/discount-codes/")
		if path == "validate" || path == "generate-code" {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if r.Method == http.MethodDelete && !strings.Contains(path, "/") {
			controllers.DiscountCode.Deactivate(w, r, path)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Orders
	http.HandleFunc("/admin/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Order.Create(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Order.List(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/admin/orders/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/orders/")

		// Status transition: PUT /admin/orders/:id/status
		if strings.HasSuffix(path, "/status") {
			if r.Method == http.MethodPut {
				controllers.Order.UpdateStatus(w, r, strings.TrimSuffix(path, "/status"))
			} else {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		if r.Method == http.MethodGet && !strings.Contains(path, "/") {
			controllers.Order.Get(w, r, path)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	})

	// Finance transactions
	http.HandleFunc("/admin/finance-transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			controllers.Finance.Create(w, r)
		} else if r.Method == http.MethodGet {
			controllers.Finance.List(w, r)
		} else {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Catalog generation
	http.HandleFunc("/admin/catalog", controllers.Catalog.Generate)
	http.HandleFunc("/admin/catalog/png-page", controllers.Catalog.DownloadPNGPage)

	// Image library
	http.HandleFunc("/admin/library/sync", controllers.Library.Sync)
	http.HandleFunc("/admin/library/images", controllers.Library.List)
	http.HandleFunc("/admin/library/images/", func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/admin/library/images/")
		if strings.HasSuffix(path, "/image") {
			controllers.Library.GetOptimizedImage(w, r, strings.TrimSuffix(path, "/image"))
			return
		}
		http.Error(w, "Not found", http.StatusNotFound)
	})
	http.HandleFunc("/admin/library/download", controllers.Library.DownloadAll)

	// Excel exports
	http.HandleFunc("/admin/exports/products.xlsx", controllers.Export.ExportProducts)
	http.HandleFunc("/admin/exports/orders.xlsx", controllers.Export.ExportOrders)
	http.HandleFunc("/admin/exports/finance.xlsx", controllers.Export.ExportFinanceTransactions)
}
