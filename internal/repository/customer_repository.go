package repository

import (
	"context"
	"fmt"

	"utilityapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository wires a repository backed by pgxpool.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

// Insert is an idempotent conditional write: a conflicting identity leaves the
// existing row untouched and reports false instead of failing.
func (r *customerRepository) Insert(ctx context.Context, customer domain.Customer) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("customer repository not initialized")
	}

	tag, err := r.pool.Exec(
		ctx,
		`INSERT INTO customers (customer_id, name, email, phone)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (customer_id) DO NOTHING`,
		customer.CustomerID,
		customer.Name,
		customer.Email,
		customer.Phone,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert customer: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *customerRepository) Exists(ctx context.Context, customerID string) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("customer repository not initialized")
	}

	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE customer_id = $1)`,
		customerID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}

	return exists, nil
}
