package middleware

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"utilityapi/internal/api"
)

// RecoveryMiddleware is the process-wide fallback: an unanticipated panic in
// any handler is logged and converted into the structured failure envelope
// instead of tearing down the request pipeline.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[HTTP] panic during %s %s: %v", r.Method, r.URL.Path, rec)
				writeFailure(w, rec)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func writeFailure(w http.ResponseWriter, rec any) {
	resp := api.Fail(
		"An unexpected error occurred while processing the request.",
		fmt.Sprintf("%v", rec),
		http.StatusInternalServerError,
	)

	body, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		// Last line of defense: a minimal plain-text error.
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("A critical server error occurred. Please contact support."))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(body)
}
