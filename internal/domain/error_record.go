package domain

import (
	"time"

	"github.com/google/uuid"
)

// RowError describes a single failed row inside an upload.
type RowError struct {
	RowNumber int    `json:"rowNumber"`
	RecordID  string `json:"recordId,omitempty"`
	Message   string `json:"message"`
}

// ErrorRecord is one aggregated audit entry per (file, table) pair. Details
// holds the serialized ordered list of RowError entries for that sheet.
// Records are append-only; the (FileName, TableName) pair is the dedup key,
// so re-processing the same file never produces a second record.
type ErrorRecord struct {
	ID        uuid.UUID `json:"id"`
	FileName  string    `json:"file_name"`
	TableName string    `json:"table_name"`
	Details   string    `json:"error_details"`
	LoggedAt  time.Time `json:"logged_at"`
}
