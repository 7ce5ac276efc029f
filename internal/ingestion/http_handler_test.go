package ingestion

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"utilityapi/internal/domain"
)

type envelope struct {
	StatusCode int             `json:"statusCode"`
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

func multipartUpload(t *testing.T, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var resp envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v\nRaw: %s", err, rec.Body.String())
	}
	return resp
}

func TestUploadHandlerRejectsEmptyFile(t *testing.T) {
	service, customers, _, _, errorLog := newTestService()
	handler := NewHTTPHandler(service)

	body, contentType := multipartUpload(t, "empty.xlsx", nil)
	req := httptest.NewRequest(http.MethodPost, "/upload-excel", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Fatalf("expected failure envelope")
	}
	if len(customers.rows) != 0 || len(errorLog.records) != 0 {
		t.Fatalf("empty upload must process zero rows and write zero error records")
	}
}

func TestUploadHandlerRejectsMissingFilePart(t *testing.T) {
	service, _, _, _, _ := newTestService()
	handler := NewHTTPHandler(service)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("note", "no file here"); err != nil {
		t.Fatalf("failed to write field: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/upload-excel", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestUploadHandlerRejectsWrongMethod(t *testing.T) {
	service, _, _, _, _ := newTestService()
	handler := NewHTTPHandler(service)

	req := httptest.NewRequest(http.MethodGet, "/upload-excel", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestUploadHandlerReturnsReport(t *testing.T) {
	service, _, _, _, _ := newTestService()
	handler := NewHTTPHandler(service)

	body, contentType := multipartUpload(t, "data.xlsx", fullWorkbook(t))
	req := httptest.NewRequest(http.MethodPost, "/upload-excel", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Fatalf("expected success envelope, got %+v", resp)
	}

	var report domain.Report
	if err := json.Unmarshal(resp.Data, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if report.FileName != "data.xlsx" {
		t.Fatalf("expected file name data.xlsx, got %s", report.FileName)
	}
	if !report.Success || report.TotalErrors != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}
