package cleanup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type failingPurger struct {
	err error
}

func (f *failingPurger) Purge(ctx context.Context) error {
	return f.err
}

func TestTriggerHandlerSuccess(t *testing.T) {
	handler := NewHTTPHandler(&failingPurger{})

	req := httptest.NewRequest(http.MethodPost, "/trigger-cleanup", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success || resp.Data.Timestamp == "" {
		t.Fatalf("expected success with timestamp, got %s", rec.Body.String())
	}
}

func TestTriggerHandlerFailure(t *testing.T) {
	handler := NewHTTPHandler(&failingPurger{err: errors.New("db offline")})

	req := httptest.NewRequest(http.MethodPost, "/trigger-cleanup", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var resp struct {
		Success bool `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected failure envelope")
	}
}

func TestTriggerHandlerRejectsWrongMethod(t *testing.T) {
	handler := NewHTTPHandler(&failingPurger{})

	req := httptest.NewRequest(http.MethodGet, "/trigger-cleanup", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}
