package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

// FinanceTransactionRepository handles database operations for finance transactions
type FinanceTransactionRepository struct {
	db *sql.DB
}

// NewFinanceTransactionRepository creates a new FinanceTransactionRepository
func NewFinanceTransactionRepository(database *sql.DB) *FinanceTransactionRepository {
	return &FinanceTransactionRepository{db: database}
}

// Ensure FinanceTransactionRepository implements FinanceTransactionRepositoryInterface
var _ FinanceTransactionRepositoryInterface = (*FinanceTransactionRepository)(nil)

// Create creates a new finance transaction
func (r *FinanceTransactionRepository) Create(ctx context.Context, req *models.CreateFinanceTransactionRequest) (*models.FinanceTransaction, error) {
	log.Printf("💰 CreateFinanceTransaction: type=%s, source=%s, amount=%d", req.Type, req.Source, req.Amount)

	if req.Type != "income" && req.Type != "expense" {
		log.Printf("❌ CreateFinanceTransaction: Invalid type: %s", req.Type)
		return nil, apperrors.NewInvalidRequest("type must be 'income' or 'expense'")
	}
	if req.Amount <= 0 {
		log.Printf("❌ CreateFinanceTransaction: Invalid amount: %d", req.Amount)
		return nil, apperrors.NewInvalidRequest("amount must be greater than 0")
	}
	if req.Source == "" {
		return nil, apperrors.NewInvalidRequest("source is required")
	}
	if req.Destination == "" {
		return nil, apperrors.NewInvalidRequest("destination is required")
	}

	// Parse occurredAt or use current time
	var occurredAt time.Time
	if req.OccurredAt != "" {
		var err error
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			log.Printf("❌ CreateFinanceTransaction: Invalid occurredAt format: %s", req.OccurredAt)
			return nil, apperrors.NewInvalidRequest("invalid occurredAt format, use RFC3339 (e.g., 2006-01-02T15:04:05Z07:00)")
		}
	} else {
		occurredAt = time.Now()
	}

	queryInsert := `
		INSERT INTO finance_transactions (id, type, source, source_id, occurred_at, amount, destination, category, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, type, source, source_id, occurred_at, amount, destination, category, notes, created_at
	`

	var transaction models.FinanceTransaction
	var category, notes sql.NullString

	err := r.db.QueryRowContext(ctx, queryInsert,
		uuid.NewString(),
		req.Type,
		req.Source,
		req.SourceID,
		occurredAt,
		req.Amount,
		req.Destination,
		sql.NullString{String: req.Category, Valid: req.Category != ""},
		sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	).Scan(
		&transaction.ID,
		&transaction.Type,
		&transaction.Source,
		&transaction.SourceID,
		&transaction.OccurredAt,
		&transaction.Amount,
		&transaction.Destination,
		&category,
		&notes,
		&transaction.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ CreateFinanceTransaction: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert finance transaction: %w", err)
	}

	transaction.Category = category.String
	transaction.Notes = notes.String

	log.Printf("✅ CreateFinanceTransaction: Created transaction id=%s", transaction.ID)
	return &transaction, nil
}

// List retrieves finance transactions, optionally bounded by from/to dates
// (YYYY-MM-DD, inclusive)
func (r *FinanceTransactionRepository) List(ctx context.Context, from, to *string) ([]models.FinanceTransaction, error) {
	query := `
		SELECT id, type, source, source_id, occurred_at, amount, destination, category, notes, created_at
		FROM finance_transactions
		WHERE 1=1
	`
	args := []interface{}{}
	argPos := 1

	if from != nil {
		query += fmt.Sprintf(" AND occurred_at >= $%d::date", argPos)
		args = append(args, *from)
		argPos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND occurred_at < ($%d::date + interval '1 day')", argPos)
		args = append(args, *to)
		argPos++
	}
	query += " ORDER BY occurred_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query finance transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.FinanceTransaction
	for rows.Next() {
		var transaction models.FinanceTransaction
		var category, notes sql.NullString
		err := rows.Scan(
			&transaction.ID,
			&transaction.Type,
			&transaction.Source,
			&transaction.SourceID,
			&transaction.OccurredAt,
			&transaction.Amount,
			&transaction.Destination,
			&category,
			&notes,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan finance transaction: %w", err)
		}
		transaction.Category = category.String
		transaction.Notes = notes.String
		transactions = append(transactions, transaction)
	}

	return transactions, rows.Err()
}
