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

// FinanceTransactionController handles HTTP requests for finance transactions
type FinanceTransactionController struct {
	repository repository.FinanceTransactionRepositoryInterface
}

// NewFinanceTransactionController creates a new FinanceTransactionController
func NewFinanceTransactionController(repo repository.FinanceTransactionRepositoryInterface) *FinanceTransactionController {
	return &FinanceTransactionController{
		repository: repo,
	}
}

// Create handles POST /admin/finance-transactions
// Example request:
// {
//   "type": "expense",
//   "source": "manual",
//   "occurredAt": "2026-08-30T10:30:00Z",
//   "amount": 5000,
//   "destination": "proveedor-dtf",
//   "category": "materiales",
//   "notes": "Film DTF"
// }
func (c *FinanceTransactionController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateFinanceTransaction: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ CreateFinanceTransaction: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateFinanceTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateFinanceTransaction: Failed to decode request body: %v", err)
		writeError(w, apperrors.NewInvalidRequest("invalid request body: %v", err))
		return
	}

	ctx := context.Background()
	transaction, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateFinanceTransaction: Error creating transaction: %v", err)
		writeError(w, err)
		return
	}

	log.Printf("✅ CreateFinanceTransaction: Successfully created transaction id=%s", transaction.ID)
	writeJSON(w, http.StatusCreated, transaction)
}

// List handles GET /admin/finance-transactions?from=2026-08-01&to=2026-08-31
func (c *FinanceTransactionController) List(w http.ResponseWriter, r *http.Request) {
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
	transactions, err := c.repository.List(ctx, from, to)
	if err != nil {
		log.Printf("❌ ListFinanceTransactions: Error fetching transactions: %v", err)
		writeError(w, err)
		return
	}
	if transactions == nil {
		transactions = []models.FinanceTransaction{}
	}

	writeJSON(w, http.StatusOK, models.FinanceTransactionListResponse{Transactions: transactions})
}
