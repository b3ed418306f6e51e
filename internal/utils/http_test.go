package utils

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusOK)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n == 0 {
		t.Error("expected bytes written")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, math.NaN(), http.StatusOK)
	if err == nil {
		t.Fatal("expected error for unmarshalable value")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestWriteMessage_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	if _, err := WriteMessage(rec, "Book not found", http.StatusNotFound); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Book not found" {
		t.Errorf("expected message 'Book not found', got %q", body["message"])
	}
}

func TestNewHTTPClient_Independent(t *testing.T) {
	a := NewHTTPClient()
	b := NewHTTPClient()
	if a.Client == nil || b.Client == nil {
		t.Fatal("expected non-nil underlying clients")
	}
	if a.Client == b.Client {
		t.Error("expected independent client instances")
	}
}
