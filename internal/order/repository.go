package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"locodhaasu-be/internal/logger"

	"go.uber.org/zap"
)

// ListFilter narrows the order listing. Fetch caps the number of records
// pulled, newest first; window slicing happens in the service.
type ListFilter struct {
	Status Status
	Zone   string
	Fetch  int
}

type Repository interface {
	Insert(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status, updatedAt time.Time) error
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*Order, error)
}

// repository keeps each order as one JSONB document plus a few filterable
// columns. The doc is the wire-format source of truth; the columns exist
// for WHERE/ORDER BY only and are written in lockstep with it.
type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, o *Order) error {
	doc, err := json.Marshal(o)
	if err != nil {
		return fmt.Errorf("failed to marshal order document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO orders (
			order_id, order_status, payment_status,
			zone, total, created_at, updated_at, doc
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		o.OrderID,
		o.OrderStatus,
		o.PaymentStatus,
		o.Customer.Zone,
		o.Total,
		o.CreatedAt,
		o.UpdatedAt,
		doc,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert order",
			zap.String("order_id", o.OrderID),
			zap.Error(err),
		)
		return err
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var doc []byte
	err := r.db.QueryRowContext(ctx,
		`SELECT doc FROM orders WHERE order_id = $1`, orderID,
	).Scan(&doc)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	return unmarshalOrder(doc)
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	query := `SELECT doc FROM orders`

	var conds []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("order_status = $%d", len(args)))
	}
	if filter.Zone != "" {
		args = append(args, filter.Zone)
		conds = append(conds, fmt.Sprintf("zone = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	args = append(args, filter.Fetch)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *repository) UpdateStatus(ctx context.Context, orderID string, status Status, updatedAt time.Time) error {
	// Columns and doc move together so filters never disagree with the
	// document a read returns.
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET order_status = $2,
		    updated_at = $3,
		    doc = jsonb_set(
		        jsonb_set(doc, '{orderStatus}', to_jsonb($2::text)),
		        '{updatedAt}', to_jsonb($3::timestamptz)
		    )
		WHERE order_id = $1
	`, orderID, status, updatedAt)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (r *repository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT doc FROM orders
		WHERE created_at >= $1 AND created_at < $2
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func scanOrders(rows *sql.Rows) ([]*Order, error) {
	orders := []*Order{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		o, err := unmarshalOrder(doc)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func unmarshalOrder(doc []byte) (*Order, error) {
	var o Order
	if err := json.Unmarshal(doc, &o); err != nil {
		return nil, fmt.Errorf("failed to unmarshal order document: %w", err)
	}
	return &o, nil
}
