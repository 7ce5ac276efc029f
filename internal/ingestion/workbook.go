package ingestion

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyFile is returned when the uploaded payload has no bytes.
	ErrEmptyFile = errors.New("uploaded file is empty")
)

// Workbook holds the fully read sheets of one uploaded xlsx file.
type Workbook struct {
	sheets []*Sheet
}

// Sheet is one named tab with its raw cell grid.
type Sheet struct {
	name string
	rows [][]string
}

// Row is one data row of a sheet. Number is the 1-based physical position,
// so the first data row below the header reports 2.
type Row struct {
	Number int
	cells  []string
}

// OpenWorkbook reads an xlsx payload into memory. An empty payload yields
// ErrEmptyFile; anything excelize cannot parse is a hard error. Both reject
// the whole upload before any sheet is processed.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if len(payload) == 0 {
		return nil, ErrEmptyFile
	}

	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer func() { _ = f.Close() }()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read rows from sheet %s: %w", name, err)
		}
		wb.sheets = append(wb.sheets, &Sheet{name: name, rows: rows})
	}

	return wb, nil
}

// Sheet locates a tab by case-insensitive name. The second return reports
// presence; an absent sheet is a skip signal for the caller, not an error.
func (w *Workbook) Sheet(name string) (*Sheet, bool) {
	for _, sheet := range w.sheets {
		if strings.EqualFold(sheet.name, name) {
			return sheet, true
		}
	}
	return nil, false
}

// Name returns the sheet's tab name as stored in the workbook.
func (s *Sheet) Name() string {
	return s.name
}

// Rows returns the data rows with the header row excluded.
func (s *Sheet) Rows() []Row {
	if len(s.rows) <= 1 {
		return nil
	}
	rows := make([]Row, 0, len(s.rows)-1)
	for idx, cells := range s.rows[1:] {
		rows = append(rows, Row{Number: idx + 2, cells: cells})
	}
	return rows
}

// Cell returns the trimmed value at the zero-based column index. Indexes past
// the end of the row yield an empty value, never a failure.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r.cells) {
		return ""
	}
	return strings.TrimSpace(r.cells[idx])
}

// Empty reports whether every cell in the row is blank.
func (r Row) Empty() bool {
	for _, cell := range r.cells {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
