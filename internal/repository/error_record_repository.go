package repository

import (
	"context"
	"fmt"
	"strings"

	"utilityapi/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type errorRecordRepository struct {
	pool *pgxpool.Pool
}

// NewErrorRecordRepository wires a repository backed by pgxpool.
func NewErrorRecordRepository(pool *pgxpool.Pool) ErrorRecordRepository {
	return &errorRecordRepository{pool: pool}
}

// Record inserts one aggregated batch per (file_name, table_name). The unique
// constraint makes re-processing the same file a no-op.
func (r *errorRecordRepository) Record(ctx context.Context, record domain.ErrorRecord) (bool, error) {
	if r.pool == nil {
		return false, fmt.Errorf("error record repository not initialized")
	}

	id := record.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	tag, err := r.pool.Exec(
		ctx,
		`INSERT INTO error_records (id, file_name, table_name, error_details)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (file_name, table_name) DO NOTHING`,
		id,
		record.FileName,
		record.TableName,
		record.Details,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record error batch: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *errorRecordRepository) List(ctx context.Context, fileName string, tableName string) ([]domain.ErrorRecord, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("error record repository not initialized")
	}

	query := `SELECT id, file_name, table_name, error_details, logged_at
	          FROM error_records`
	var conditions []string
	var args []any

	if strings.TrimSpace(fileName) != "" {
		args = append(args, fileName)
		conditions = append(conditions, fmt.Sprintf("file_name = $%d", len(args)))
	}
	if strings.TrimSpace(tableName) != "" {
		args = append(args, tableName)
		conditions = append(conditions, fmt.Sprintf("table_name = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY logged_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list error records: %w", err)
	}
	defer rows.Close()

	records := []domain.ErrorRecord{}
	for rows.Next() {
		var (
			record   domain.ErrorRecord
			loggedAt pgtype.Timestamptz
		)
		if scanErr := rows.Scan(
			&record.ID,
			&record.FileName,
			&record.TableName,
			&record.Details,
			&loggedAt,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan error record: %w", scanErr)
		}

		if loggedAt.Valid {
			record.LoggedAt = loggedAt.Time
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate error records: %w", rowsErr)
	}

	return records, nil
}
