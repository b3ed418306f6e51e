package utils

import (
	"context"
	"testing"

	"github.com/bookvault/bookvault/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetAuthClaimsFromContext_Success(t *testing.T) {
	claims := models.TokenClaims{Email: "a@x.com", Name: "A"}
	ctx := context.WithValue(context.Background(), AuthClaimsCtxKey, claims)

	got, ok := GetAuthClaimsFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", got.Email)
	}
}

func TestGetAuthClaimsFromContext_Missing(t *testing.T) {
	_, ok := GetAuthClaimsFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetAuthClaimsFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthClaimsCtxKey, "not-claims")

	_, ok := GetAuthClaimsFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
