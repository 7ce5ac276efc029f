package cleanup

import (
	"net/http"
	"time"

	"utilityapi/internal/api"
)

// Handler exposes the purge routine as a manual trigger endpoint.
type Handler struct {
	purger Purger
}

// NewHTTPHandler wraps the purger with a POST endpoint.
func NewHTTPHandler(purger Purger) http.Handler {
	return &Handler{purger: purger}
}

type triggerResult struct {
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		api.WriteJSON(w, api.Fail("method not allowed", nil, http.StatusMethodNotAllowed))
		return
	}

	if err := h.purger.Purge(r.Context()); err != nil {
		api.WriteJSON(w, api.Fail("Cleanup failed.", map[string]any{
			"exception": err.Error(),
			"timestamp": time.Now().UTC(),
		}, http.StatusInternalServerError))
		return
	}

	api.WriteJSON(w, api.OK(triggerResult{Timestamp: time.Now().UTC()}, "Database cleanup executed successfully."))
}
