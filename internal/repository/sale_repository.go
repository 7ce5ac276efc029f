package repository

import (
	"context"
	"fmt"

	"utilityapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type saleRepository struct {
	pool *pgxpool.Pool
}

// NewSaleRepository wires a repository backed by pgxpool.
func NewSaleRepository(pool *pgxpool.Pool) SaleRepository {
	return &saleRepository{pool: pool}
}

// Insert relies on ON CONFLICT for duplicate sale ids. Foreign key violations
// still surface as errors; the orchestrator checks both references first, so
// one here means a concurrent upload removed nothing but raced us, or the
// references were purged between check and insert.
func (r *saleRepository) Insert(ctx context.Context, sale domain.Sale) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("sale repository not initialized")
	}

	var quantity, total any
	if sale.Quantity != nil {
		quantity = *sale.Quantity
	}
	if sale.Total != nil {
		total = *sale.Total
	}

	tag, err := r.pool.Exec(
		ctx,
		`INSERT INTO sales (sale_id, customer_id, product_id, quantity, total)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (sale_id) DO NOTHING`,
		sale.SaleID,
		sale.CustomerID,
		sale.ProductID,
		quantity,
		total,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert sale: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *saleRepository) Exists(ctx context.Context, saleID string) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("sale repository not initialized")
	}

	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM sales WHERE sale_id = $1)`,
		saleID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check sale existence: %w", err)
	}

	return exists, nil
}
