package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"lovilike-backoffice/apperrors"
	"lovilike-backoffice/models"
)

// Valid order status transitions. An order only moves forward through
// production; cancellation is possible while nothing has been produced.
var orderTransitions = map[string][]string{
	models.OrderStatusPending:      {models.OrderStatusPaid, models.OrderStatusCancelled},
	models.OrderStatusPaid:         {models.OrderStatusInProduction, models.OrderStatusCancelled},
	models.OrderStatusInProduction: {models.OrderStatusShipped},
	models.OrderStatusShipped:      {models.OrderStatusDelivered},
}

// OrderRepository handles database operations for personalization orders
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(database *sql.DB) *OrderRepository {
	return &OrderRepository{db: database}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Create persists an order with its lines in one transaction. The order comes
// in fully priced; pricing happens in the controller through the calculator.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	log.Printf("🧾 CreateOrder: customer=%s, lines=%d, total=%d", order.CustomerName, len(order.Lines), order.Total)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	order.ID = uuid.NewString()
	order.Status = models.OrderStatusPending

	var discountCodeID interface{}
	if order.DiscountCodeID != "" {
		discountCodeID = order.DiscountCodeID
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (id, customer_name, customer_email, status, subtotal, code_discount, total, discount_code_id, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at
	`,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.Status,
		order.Subtotal,
		order.CodeDiscount,
		order.Total,
		discountCodeID,
		order.Notes,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		log.Printf("❌ CreateOrder: Insert failed: %v", err)
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Lines {
		line := &order.Lines[i]
		line.ID = uuid.NewString()
		line.OrderID = order.ID

		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (id, order_id, product_id, quantity, sides_json, areas_json, final_unit_price, line_total, design_payload)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
			line.ID,
			order.ID,
			line.ProductID,
			line.Quantity,
			line.SidesJSON,
			line.AreasJSON,
			line.FinalUnitPrice,
			line.LineTotal,
			line.DesignPayload,
		)
		if err != nil {
			log.Printf("❌ CreateOrder: Line insert failed: %v", err)
			return nil, fmt.Errorf("failed to insert order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	log.Printf("✅ CreateOrder: Created order id=%s", order.ID)
	return order, nil
}

// GetByID retrieves an order with its lines
func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, status, subtotal, code_discount, total,
		       COALESCE(discount_code_id, ''), notes, created_at, updated_at
		FROM orders
		WHERE id = $1
	`

	var order models.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.CustomerName,
		&order.CustomerEmail,
		&order.Status,
		&order.Subtotal,
		&order.CodeDiscount,
		&order.Total,
		&order.DiscountCodeID,
		&order.Notes,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &apperrors.OrderNotFoundError{OrderID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	lines, err := r.listLines(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (r *OrderRepository) listLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	query := `
		SELECT id, order_id, product_id, quantity, sides_json, areas_json, final_unit_price, line_total, design_payload
		FROM order_lines
		WHERE order_id = $1
		ORDER BY id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		var line models.OrderLine
		err := rows.Scan(
			&line.ID,
			&line.OrderID,
			&line.ProductID,
			&line.Quantity,
			&line.SidesJSON,
			&line.AreasJSON,
			&line.FinalUnitPrice,
			&line.LineTotal,
			&line.DesignPayload,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// List retrieves orders without their lines, optionally filtered by status
func (r *OrderRepository) List(ctx context.Context, status string) ([]models.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, status, subtotal, code_discount, total,
		       COALESCE(discount_code_id, ''), notes, created_at, updated_at
		FROM orders
	`
	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var order models.Order
		err := rows.Scan(
			&order.ID,
			&order.CustomerName,
			&order.CustomerEmail,
			&order.Status,
			&order.Subtotal,
			&order.CodeDiscount,
			&order.Total,
			&order.DiscountCodeID,
			&order.Notes,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	return orders, rows.Err()
}

// UpdateStatus performs a status transition, rejecting anything outside the
// allowed order lifecycle.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	log.Printf("🧾 UpdateOrderStatus: id=%s, status=%s", id, status)

	order, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, next := range orderTransitions[order.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		log.Printf("❌ UpdateOrderStatus: Invalid transition %s -> %s for order %s", order.Status, status, id)
		return nil, apperrors.NewInvalidRequest("invalid status transition: %s -> %s", order.Status, status)
	}

	_, err = r.db.ExecContext(ctx, `
		UPDATE orders SET status = $1, updated_at = NOW() WHERE id = $2
	`, status, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = status
	log.Printf("✅ UpdateOrderStatus: Order %s is now %s", id, status)
	return order, nil
}
