package controller

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"lovilike-backoffice/repository"
	"lovilike-backoffice/utils"
)

// ExportController handles Excel exports for back-office reporting
type ExportController struct {
	products repository.ProductRepositoryInterface
	orders   repository.OrderRepositoryInterface
	finance  repository.FinanceTransactionRepositoryInterface
}

// NewExportController creates a new ExportController
func NewExportController(
	products repository.ProductRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	finance repository.FinanceTransactionRepositoryInterface,
) *ExportController {
	return &ExportController{
		products: products,
		orders:   orders,
		finance:  finance,
	}
}

// ExportProducts handles GET /admin/exports/products.xlsx?active=true
// Streams an Excel workbook with one row per product.
func (c *ExportController) ExportProducts(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportProducts: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	activeOnly := r.URL.Query().Get("active") == "true"

	ctx := context.Background()
	products, err := c.products.List(ctx, activeOnly)
	if err != nil {
		log.Printf("❌ ExportProducts: Error fetching products: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch products: %v", err), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Productos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Nombre", "Slug", "Precio base", "Personalizable", "Activo", "Creado"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, product := range products {
		values := []interface{}{
			product.ID,
			product.Name,
			product.Slug,
			utils.FormatEUR(product.BasePrice),
			product.IsPersonalizable,
			product.IsActive,
			product.CreatedAt,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("productos_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)

	if err := f.Write(w); err != nil {
		log.Printf("❌ ExportProducts: Error writing workbook: %v", err)
		return
	}

	log.Printf("✅ ExportProducts: Exported %d products", len(products))
}

// ExportOrders handles GET /admin/exports/orders.xlsx?status=paid
// Streams an Excel workbook with one row per order.
func (c *ExportController) ExportOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportOrders: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))

	ctx := context.Background()
	orders, err := c.orders.List(ctx, status)
	if err != nil {
		log.Printf("❌ ExportOrders: Error fetching orders: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch orders: %v", err), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Pedidos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Cliente", "Email", "Estado", "Subtotal", "Descuento", "Total", "Creado"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, order := range orders {
		values := []interface{}{
			order.ID,
			order.CustomerName,
			order.CustomerEmail,
			order.Status,
			utils.FormatEUR(order.Subtotal),
			utils.FormatEUR(order.CodeDiscount),
			utils.FormatEUR(order.Total),
			order.CreatedAt,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("pedidos_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)

	if err := f.Write(w); err != nil {
		log.Printf("❌ ExportOrders: Error writing workbook: %v", err)
		return
	}

	log.Printf("✅ ExportOrders: Exported %d orders", len(orders))
}

// ExportFinanceTransactions handles GET /admin/exports/finance.xlsx?from=...&to=...
// Streams an Excel workbook with one row per transaction plus a totals row.
func (c *ExportController) ExportFinanceTransactions(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ExportFinance: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var from, to *string
	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		from = &v
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		to = &v
	}

	ctx := context.Background()
	transactions, err := c.finance.List(ctx, from, to)
	if err != nil {
		log.Printf("❌ ExportFinance: Error fetching transactions: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch transactions: %v", err), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Finanzas"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Tipo", "Origen", "Fecha", "Importe", "Destino", "Categoría", "Notas"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	var income, expense int64
	for row, t := range transactions {
		if t.Type == "income" {
			income += t.Amount
		} else {
			expense += t.Amount
		}
		values := []interface{}{
			t.ID,
			t.Type,
			t.Source,
			t.OccurredAt,
			utils.FormatEUR(t.Amount),
			t.Destination,
			t.Category,
			t.Notes,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	totalsRow := len(transactions) + 3
	cell, _ := excelize.CoordinatesToCellName(1, totalsRow)
	f.SetCellValue(sheet, cell, "Balance")
	cell, _ = excelize.CoordinatesToCellName(2, totalsRow)
	f.SetCellValue(sheet, cell, utils.FormatEUR(income-expense))

	filename := fmt.Sprintf("finanzas_%s.xlsx", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.WriteHeader(http.StatusOK)

	if err := f.Write(w); err != nil {
		log.Printf("❌ ExportFinance: Error writing workbook: %v", err)
		return
	}

	log.Printf("✅ ExportFinance: Exported %d transactions", len(transactions))
}
