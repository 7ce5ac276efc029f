package sampledata

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"utilityapi/internal/api"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Handler serves a generated sample workbook as an attachment.
type Handler struct {
	numRecords int
}

// NewHTTPHandler wraps the generator with a GET endpoint.
func NewHTTPHandler(numRecords int) http.Handler {
	if numRecords <= 0 {
		numRecords = DefaultRecordCount
	}
	return &Handler{numRecords: numRecords}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteJSON(w, api.Fail("method not allowed", nil, http.StatusMethodNotAllowed))
		return
	}

	f, err := Generate(h.numRecords)
	if err != nil {
		api.WriteJSON(w, api.Fail("Failed to generate sample workbook.", err.Error(), http.StatusInternalServerError))
		return
	}
	defer func() { _ = f.Close() }()

	fileName := fmt.Sprintf("SampleData_%dRecords_%s.xlsx", h.numRecords, time.Now().Format("20060102150405"))
	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if err := f.Write(w); err != nil {
		// Headers are already out; all we can do is log.
		log.Printf("[SAMPLE] failed to stream workbook: %v", err)
	}
}
