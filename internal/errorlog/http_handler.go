package errorlog

import (
	"encoding/json"
	"net/http"
	"time"

	"utilityapi/internal/api"
	"utilityapi/internal/repository"
)

// Handler serves the read-only error record query endpoint.
type Handler struct {
	records repository.ErrorRecordRepository
}

// NewHTTPHandler wraps the repository with a GET endpoint.
func NewHTTPHandler(records repository.ErrorRecordRepository) http.Handler {
	return &Handler{records: records}
}

// entry is the response shape: the stored JSON details are parsed back into
// a value, or passed through as the raw string when parsing fails.
type entry struct {
	FileName  string    `json:"fileName"`
	TableName string    `json:"tableName"`
	Details   any       `json:"errorDetails"`
	LoggedAt  time.Time `json:"loggedAt"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.WriteJSON(w, api.Fail("method not allowed", nil, http.StatusMethodNotAllowed))
		return
	}

	fileName := r.URL.Query().Get("file")
	tableName := r.URL.Query().Get("table")

	records, err := h.records.List(r.Context(), fileName, tableName)
	if err != nil {
		api.WriteJSON(w, api.Fail("Failed to retrieve error records.", err.Error(), http.StatusInternalServerError))
		return
	}

	entries := make([]entry, 0, len(records))
	for _, record := range records {
		entries = append(entries, entry{
			FileName:  record.FileName,
			TableName: record.TableName,
			Details:   tryParseJSON(record.Details),
			LoggedAt:  record.LoggedAt,
		})
	}

	api.WriteJSON(w, api.OK(entries, "Error records retrieved successfully."))
}

// tryParseJSON falls back to the raw string for payloads that are not valid
// JSON. A parse failure is not an error condition on this read path.
func tryParseJSON(raw string) any {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	return parsed
}
