package repository

import (
	"context"
	"fmt"

	"utilityapi/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository wires a repository backed by pgxpool.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) Insert(ctx context.Context, product domain.Product) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("product repository not initialized")
	}

	var price any
	if product.Price != nil {
		price = *product.Price
	}

	tag, err := r.pool.Exec(
		ctx,
		`INSERT INTO products (product_id, product_name, category, price)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (product_id) DO NOTHING`,
		product.ProductID,
		product.ProductName,
		product.Category,
		price,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *productRepository) Exists(ctx context.Context, productID string) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("product repository not initialized")
	}

	var exists bool
	err := r.pool.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM products WHERE product_id = $1)`,
		productID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}

	return exists, nil
}
