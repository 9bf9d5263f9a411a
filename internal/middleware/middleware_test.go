package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// ============================================================================
// Chain Tests
// ============================================================================

func TestChain_NoMiddlewares_ReturnsHandler(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("handler"))
	})

	result := Chain(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	result.ServeHTTP(rr, req)

	if rr.Body.String() != "handler" {
		t.Errorf("expected body 'handler', got %q", rr.Body.String())
	}
}

func TestChain_AppliesInOrder(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("handler"))
	})

	tag := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(label + ">"))
				next.ServeHTTP(w, r)
			})
		}
	}

	result := Chain(handler, tag("first"), tag("second"))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	result.ServeHTTP(rr, req)

	if rr.Body.String() != "first>second>handler" {
		t.Errorf("expected outer-to-inner order, got %q", rr.Body.String())
	}
}

// ============================================================================
// RequestID Tests
// ============================================================================

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen == "" {
		t.Error("expected a generated request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != seen {
		t.Error("expected request ID echoed in response header")
	}
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	t.Parallel()

	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "client-supplied-id" {
		t.Errorf("expected client request ID preserved, got %q", seen)
	}
}

// ============================================================================
// Recovery Tests
// ============================================================================

func TestRecovery_PanicReturns500(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("unexpected")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON error body, got content type %q", ct)
	}
}

func TestRecovery_NoPanic_PassesThrough(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected handler status preserved, got %d", rr.Code)
	}
}

// ============================================================================
// CORS Tests
// ============================================================================

func TestCORS_AllowedOrigin_SetsHeader(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Error("expected allowed origin reflected in header")
	}
}

func TestCORS_DisallowedOrigin_NoHeader(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no allow-origin header for foreign origin")
	}
}

func TestCORS_Preflight_Returns204(t *testing.T) {
	t.Parallel()

	handlerCalled := false
	handler := CORS([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://anywhere.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204 for preflight, got %d", rr.Code)
	}
	if handlerCalled {
		t.Error("preflight must not reach the inner handler")
	}
}
