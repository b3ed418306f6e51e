package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	// must not panic and must not write anywhere
	l.Info().Msg("discarded")
	l.Error().Msg("discarded too")
}

func TestNewWriterLogger_EmitsJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)

	l.Info().Str("key", "value").Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if entry["key"] != "value" {
		t.Errorf("expected key=value, got %v", entry["key"])
	}
	if entry["message"] != "hello" {
		t.Errorf("expected message=hello, got %v", entry["message"])
	}
}

func TestGetChildLogger_InheritsParent(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected non-nil child logger")
	}
	if child == parent {
		t.Error("expected a distinct logger instance")
	}
}

func TestFromContext_NoLoggerAttached(t *testing.T) {
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected non-nil logger from bare context")
	}
}

func TestFromRequest_AttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	attached := NewWriterLogger(&buf)

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(attached.WithContext(req.Context()))

	l := FromRequest(req)
	l.Info().Msg("via request")

	if buf.Len() == 0 {
		t.Error("expected the request-scoped logger to write to the attached buffer")
	}
}
