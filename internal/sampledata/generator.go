package sampledata

import (
	"fmt"
	"math/rand"

	"github.com/xuri/excelize/v2"
)

// DefaultRecordCount matches the historical sample file size.
const DefaultRecordCount = 2000

// Generate builds a workbook with Customers, Products, and Sales sheets in
// the exact column layout the ingestion pipeline reads. Sales reference
// random customer and product ids from the same file, so the output round
// trips through the upload endpoint without referential failures.
func Generate(numRecords int) (*excelize.File, error) {
	if numRecords <= 0 {
		numRecords = DefaultRecordCount
	}

	f := excelize.NewFile()

	if err := writeSheet(f, "Customers",
		[]any{"CustomerId", "Name", "Email", "Phone"},
		func(i int) []any {
			return []any{
				fmt.Sprintf("C%04d", i),
				fmt.Sprintf("Customer %d", i),
				fmt.Sprintf("customer%d@example.com", i),
				fmt.Sprintf("98765%04d", i%10000),
			}
		}, numRecords); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Products",
		[]any{"ProductId", "ProductName", "Category", "Price"},
		func(i int) []any {
			return []any{
				fmt.Sprintf("P%04d", i),
				fmt.Sprintf("Product %d", i),
				fmt.Sprintf("Category %d", i%10),
				rand.Intn(990) + 10,
			}
		}, numRecords); err != nil {
		return nil, err
	}

	if err := writeSheet(f, "Sales",
		[]any{"SaleId", "CustomerId", "ProductId", "Quantity", "Total"},
		func(i int) []any {
			quantity := rand.Intn(9) + 1
			price := rand.Intn(4900) + 100
			return []any{
				fmt.Sprintf("S%04d", i),
				fmt.Sprintf("C%04d", rand.Intn(numRecords)+1),
				fmt.Sprintf("P%04d", rand.Intn(numRecords)+1),
				quantity,
				quantity * price,
			}
		}, numRecords); err != nil {
		return nil, err
	}

	// Drop the default sheet so the workbook only carries the three tabs.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to remove default sheet: %w", err)
	}

	return f, nil
}

func writeSheet(f *excelize.File, name string, header []any, rowFunc func(i int) []any, numRecords int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", name, err)
	}
	for i := 1; i <= numRecords; i++ {
		row := rowFunc(i)
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell for %s row %d: %w", name, i, err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", name, i, err)
		}
	}
	return nil
}
