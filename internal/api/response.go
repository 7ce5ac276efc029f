package api

import (
	"encoding/json"
	"net/http"
)

// Response is the JSON envelope every endpoint returns.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Errors     any    `json:"errors,omitempty"`
}

// OK builds a successful envelope.
func OK(data any, message string) Response {
	if message == "" {
		message = "Request successful"
	}
	return Response{StatusCode: http.StatusOK, Success: true, Message: message, Data: data}
}

// Fail builds a failure envelope with the given status code.
func Fail(message string, errs any, statusCode int) Response {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return Response{StatusCode: statusCode, Success: false, Message: message, Errors: errs}
}

// WriteJSON writes the envelope using its embedded status code.
func WriteJSON(w http.ResponseWriter, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(resp)
}
