package models

// FinanceTransaction represents a financial transaction in the database
type FinanceTransaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"` // 'income' or 'expense'
	Source      string `json:"source"`
	SourceID    string `json:"sourceId,omitempty"`
	OccurredAt  string `json:"occurredAt"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"createdAt"`
}

// CreateFinanceTransactionRequest represents the request body for creating a finance transaction
// Example: {
//   "type": "income",
//   "source": "order",
//   "sourceId": "ord_9f2...",
//   "occurredAt": "2026-08-30T10:30:00Z",
//   "amount": 10200,
//   "destination": "Redsys",
//   "category": "ventas",
//   "notes": "Pedido personalizado"
// }
type CreateFinanceTransactionRequest struct {
	Type        string `json:"type"`     // 'income' or 'expense'
	Source      string `json:"source"`   // e.g. "order", "refund", "manual"
	SourceID    string `json:"sourceId"` // id of the source record ("" if not applicable)
	OccurredAt  string `json:"occurredAt,omitempty"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// FinanceTransactionListResponse wraps a list of transactions
type FinanceTransactionListResponse struct {
	Transactions []FinanceTransaction `json:"transactions"`
}
