package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bookvault/bookvault/internal/config"
	"github.com/bookvault/bookvault/internal/logger"
	"github.com/bookvault/bookvault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHome(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockBookService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello World!", responseMessage(t, rec))
}

func TestDummyLogin_RendersPageConfig(t *testing.T) {
	cfg := config.Federated{
		Page: config.FederatedPage{
			APIKey:     "public-api-key",
			AuthDomain: "bookvault.example.com",
			ProjectID:  "bookvault-test",
			AppID:      "1:234:web:abcd",
		},
	}
	h := NewHandler(&service.Services{}, cfg, logger.Nop())

	req := httptest.NewRequest(http.MethodGet, "/dummy/login", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "public-api-key")
	assert.Contains(t, rec.Body.String(), "bookvault.example.com")
}

func TestTraceIDHeaderIsSet(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockBookService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

func TestTraceIDHeaderPassthrough(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, &mockBookService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "caller-supplied-id")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "caller-supplied-id", rec.Header().Get(traceIDHeader))
}
