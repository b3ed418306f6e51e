package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/logger"
)

func newVerifierAgainst(t *testing.T, handler http.HandlerFunc, clientID string) *googleVerifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewGoogleVerifier(config.Federated{
		TokenInfoURL:   srv.URL,
		ClientID:       clientID,
		RequestTimeout: 2 * time.Second,
	}, logger.Nop())
}

func TestVerifyIDToken_Success(t *testing.T) {
	v := newVerifierAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id_token"); got != "the-token" {
			t.Errorf("expected id_token query param, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"aud": "client-1",
			"email": "a@x.com",
			"email_verified": "true",
			"name": "A"
		}`))
	}, "client-1")

	claims, err := v.VerifyIDToken(context.Background(), "the-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Email != "a@x.com" || claims.Name != "A" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if !claims.EmailVerified {
		t.Error("expected email_verified=true")
	}
}

func TestVerifyIDToken_UnverifiedEmail(t *testing.T) {
	v := newVerifierAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud": "client-1", "email": "a@x.com", "email_verified": "false"}`))
	}, "client-1")

	claims, err := v.VerifyIDToken(context.Background(), "t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.EmailVerified {
		t.Error("expected email_verified=false")
	}
}

func TestVerifyIDToken_ProviderRejects(t *testing.T) {
	v := newVerifierAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "invalid_token"}`, http.StatusBadRequest)
	}, "client-1")

	_, err := v.VerifyIDToken(context.Background(), "bad")
	if !errors.Is(err, ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
}

func TestVerifyIDToken_AudienceMismatch(t *testing.T) {
	v := newVerifierAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud": "someone-else", "email": "a@x.com", "email_verified": "true"}`))
	}, "client-1")

	_, err := v.VerifyIDToken(context.Background(), "t")
	if !errors.Is(err, ErrAudienceMismatch) {
		t.Fatalf("expected ErrAudienceMismatch, got %v", err)
	}
}

func TestVerifyIDToken_NoClientIDSkipsAudienceCheck(t *testing.T) {
	v := newVerifierAgainst(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"aud": "whatever", "email": "a@x.com", "email_verified": "true"}`))
	}, "")

	if _, err := v.VerifyIDToken(context.Background(), "t"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
