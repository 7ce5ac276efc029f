package ingestion

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"strings"

	"utilityapi/internal/domain"
	"utilityapi/internal/repository"
)

const (
	// TableCustomers and friends are the sheet names the orchestrator looks
	// for, matched case-insensitively, and the table names error batches are
	// keyed by.
	TableCustomers = "Customers"
	TableProducts  = "Products"
	TableSales     = "Sales"

	missingReferenceMessage = "The referenced Customer or Product does not exist"
)

// Service drives one upload through validation, referential checks, and
// idempotent persistence, collecting every row failure into per-table
// error batches.
type Service struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	errorLog  repository.ErrorRecordRepository
}

// NewService creates a new ingestion service.
func NewService(
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	errorLog repository.ErrorRecordRepository,
) *Service {
	return &Service{
		customers: customers,
		products:  products,
		sales:     sales,
		errorLog:  errorLog,
	}
}

// Ingest processes the uploaded workbook sheet by sheet. The order is
// load-bearing: customers and products are fully committed before any sale
// is evaluated, so a sale may reference rows introduced earlier in the same
// upload. A row failure never aborts the upload; the only hard errors are an
// empty or unparseable payload, rejected before any sheet is read.
func (s *Service) Ingest(ctx context.Context, fileName string, data io.Reader) (domain.Report, error) {
	report := domain.Report{
		Success:  true,
		FileName: fileName,
		Tables:   []domain.TableErrors{},
	}

	wb, err := OpenWorkbook(data)
	if err != nil {
		return report, err
	}

	for _, sheet := range []struct {
		table   string
		process func(context.Context, *Workbook) []domain.RowError
	}{
		{TableCustomers, s.processCustomers},
		{TableProducts, s.processProducts},
		{TableSales, s.processSales},
	} {
		failures := sheet.process(ctx, wb)
		if len(failures) == 0 {
			continue
		}
		s.recordBatch(ctx, fileName, sheet.table, failures)
		report.Tables = append(report.Tables, domain.TableErrors{
			TableName: sheet.table,
			Errors:    failures,
		})
		report.TotalErrors += len(failures)
	}

	report.Success = report.TotalErrors == 0
	return report, nil
}

func (s *Service) processCustomers(ctx context.Context, wb *Workbook) []domain.RowError {
	sheet, ok := wb.Sheet(TableCustomers)
	if !ok {
		return nil
	}

	var failures []domain.RowError
	for _, row := range sheet.Rows() {
		if row.Empty() {
			continue
		}

		customer := domain.Customer{
			CustomerID: row.Cell(0),
			Name:       row.Cell(1),
			Email:      row.Cell(2),
			Phone:      row.Cell(3),
		}

		missing := MissingFields(
			Field{Name: "CustomerId", Value: customer.CustomerID},
			Field{Name: "Name", Value: customer.Name},
			Field{Name: "Email", Value: customer.Email},
			Field{Name: "Phone", Value: customer.Phone},
		)
		if len(missing) > 0 {
			failures = append(failures, missingFieldsError(row.Number, customer.CustomerID, missing))
			continue
		}

		// Duplicate identities fall through as no-ops, not failures.
		if _, err := s.customers.Insert(ctx, customer); err != nil {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number,
				RecordID:  customer.CustomerID,
				Message:   err.Error(),
			})
		}
	}
	return failures
}

func (s *Service) processProducts(ctx context.Context, wb *Workbook) []domain.RowError {
	sheet, ok := wb.Sheet(TableProducts)
	if !ok {
		return nil
	}

	var failures []domain.RowError
	for _, row := range sheet.Rows() {
		if row.Empty() {
			continue
		}

		product := domain.Product{
			ProductID:   row.Cell(0),
			ProductName: row.Cell(1),
			Category:    row.Cell(2),
			Price:       parseDecimal(row.Cell(3)),
		}

		missing := MissingFields(
			Field{Name: "ProductId", Value: product.ProductID},
			Field{Name: "ProductName", Value: product.ProductName},
			Field{Name: "Category", Value: product.Category},
			Field{Name: "Price", Value: floatValue(product.Price)},
		)
		if len(missing) > 0 {
			failures = append(failures, missingFieldsError(row.Number, product.ProductID, missing))
			continue
		}

		if _, err := s.products.Insert(ctx, product); err != nil {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number,
				RecordID:  product.ProductID,
				Message:   err.Error(),
			})
		}
	}
	return failures
}

func (s *Service) processSales(ctx context.Context, wb *Workbook) []domain.RowError {
	sheet, ok := wb.Sheet(TableSales)
	if !ok {
		return nil
	}

	var failures []domain.RowError
	for _, row := range sheet.Rows() {
		if row.Empty() {
			continue
		}

		sale := domain.Sale{
			SaleID:     row.Cell(0),
			CustomerID: row.Cell(1),
			ProductID:  row.Cell(2),
			Quantity:   parseInt(row.Cell(3)),
			Total:      parseDecimal(row.Cell(4)),
		}

		missing := MissingFields(
			Field{Name: "SaleId", Value: sale.SaleID},
			Field{Name: "CustomerId", Value: sale.CustomerID},
			Field{Name: "ProductId", Value: sale.ProductID},
			Field{Name: "Quantity", Value: intValue(sale.Quantity)},
			Field{Name: "Total", Value: floatValue(sale.Total)},
		)
		if len(missing) > 0 {
			failures = append(failures, missingFieldsError(row.Number, sale.SaleID, missing))
			continue
		}

		customerOK, err := s.customers.Exists(ctx, sale.CustomerID)
		if err != nil {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number, RecordID: sale.SaleID, Message: err.Error(),
			})
			continue
		}
		productOK, err := s.products.Exists(ctx, sale.ProductID)
		if err != nil {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number, RecordID: sale.SaleID, Message: err.Error(),
			})
			continue
		}
		if !customerOK || !productOK {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number,
				RecordID:  sale.SaleID,
				Message:   missingReferenceMessage,
			})
			continue
		}

		if _, err := s.sales.Insert(ctx, sale); err != nil {
			failures = append(failures, domain.RowError{
				RowNumber: row.Number,
				RecordID:  sale.SaleID,
				Message:   err.Error(),
			})
		}
	}
	return failures
}

// recordBatch persists one aggregated error record per (file, table) pair.
// The repository suppresses the write when a batch for the pair already
// exists, which keeps reruns of the same file from duplicating audit rows.
func (s *Service) recordBatch(ctx context.Context, fileName, tableName string, failures []domain.RowError) {
	details, err := json.Marshal(failures)
	if err != nil {
		log.Printf("[INGEST] failed to serialize error batch for %s/%s: %v", fileName, tableName, err)
		return
	}

	if _, err := s.errorLog.Record(ctx, domain.ErrorRecord{
		FileName:  fileName,
		TableName: tableName,
		Details:   string(details),
	}); err != nil {
		log.Printf("[INGEST] failed to record error batch for %s/%s: %v", fileName, tableName, err)
	}
}

func missingFieldsError(rowNumber int, recordID string, missing []string) domain.RowError {
	return domain.RowError{
		RowNumber: rowNumber,
		RecordID:  recordID,
		Message:   "Missing required field(s): " + strings.Join(missing, ", "),
	}
}
