package repository

import (
	"context"

	"utilityapi/internal/domain"
)

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	// Insert persists the customer unless the identity already exists.
	// It reports whether a row was actually written.
	Insert(ctx context.Context, customer domain.Customer) (bool, error)
	Exists(ctx context.Context, customerID string) (bool, error)
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	Insert(ctx context.Context, product domain.Product) (bool, error)
	Exists(ctx context.Context, productID string) (bool, error)
}

// SaleRepository defines the interface for sale persistence.
type SaleRepository interface {
	Insert(ctx context.Context, sale domain.Sale) (bool, error)
	Exists(ctx context.Context, saleID string) (bool, error)
}

// ErrorRecordRepository stores the aggregated per-sheet error batches.
type ErrorRecordRepository interface {
	// Record persists the batch unless one already exists for the same
	// (file name, table name) pair. It reports whether a row was written.
	Record(ctx context.Context, record domain.ErrorRecord) (bool, error)
	// List returns logged batches, newest first. Empty filter values match
	// all records.
	List(ctx context.Context, fileName string, tableName string) ([]domain.ErrorRecord, error)
}

// MaintenanceRepository exposes the purge routine the cleanup job calls.
type MaintenanceRepository interface {
	Purge(ctx context.Context) error
}
