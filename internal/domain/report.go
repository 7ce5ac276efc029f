package domain

// TableErrors groups the failed rows of one sheet for the upload report.
type TableErrors struct {
	TableName string     `json:"tableName"`
	Errors    []RowError `json:"errors"`
}

// Report summarizes one processed upload.
type Report struct {
	Success     bool          `json:"success"`
	FileName    string        `json:"fileName"`
	TotalErrors int           `json:"totalErrors"`
	Tables      []TableErrors `json:"tables"`
}
