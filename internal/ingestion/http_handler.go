package ingestion

import (
	"errors"
	"fmt"
	"net/http"

	"utilityapi/internal/api"
)

// Handler exposes ingestion as an HTTP endpoint.
type Handler struct {
	service *Service
}

// NewHTTPHandler wraps the service with a POST endpoint.
func NewHTTPHandler(service *Service) http.Handler {
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteJSON(w, api.Fail("method not allowed", nil, http.StatusMethodNotAllowed))
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		api.WriteJSON(w, api.Fail(fmt.Sprintf("invalid form data: %v", err), nil, http.StatusBadRequest))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		api.WriteJSON(w, api.Fail("Please upload a valid Excel file.", nil, http.StatusBadRequest))
		return
	}
	defer file.Close()

	if header.Size == 0 {
		api.WriteJSON(w, api.Fail("Please upload a valid Excel file.", nil, http.StatusBadRequest))
		return
	}

	report, err := h.service.Ingest(r.Context(), header.Filename, file)
	if err != nil {
		if errors.Is(err, ErrEmptyFile) {
			api.WriteJSON(w, api.Fail("Please upload a valid Excel file.", nil, http.StatusBadRequest))
			return
		}
		api.WriteJSON(w, api.Fail(err.Error(), nil, http.StatusBadRequest))
		return
	}

	api.WriteJSON(w, api.OK(report, "Excel data processed successfully"))
}
