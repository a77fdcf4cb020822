package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func corsRequest(t *testing.T, origins []string, method, origin string) *httptest.ResponseRecorder {
	t.Helper()
	handler := CORS(origins)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(method, "/api/features", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCORSExplicitOrigin(t *testing.T) {
	rec := corsRequest(t, []string{"https://studio.example"}, http.MethodGet, "https://studio.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://studio.example" {
		t.Errorf("Expected origin echoed, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials allowed for explicit origin, got %q", got)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected request passed through, got %d", rec.Code)
	}
}

func TestCORSWildcardNoCredentials(t *testing.T) {
	rec := corsRequest(t, []string{"*"}, http.MethodGet, "https://anywhere.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example" {
		t.Errorf("Expected origin echoed under wildcard, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("Expected no credentials header for wildcard match, got %q", got)
	}
}

func TestCORSDisallowedOrigin(t *testing.T) {
	rec := corsRequest(t, []string{"https://studio.example"}, http.MethodGet, "https://evil.example")

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Expected no CORS headers for disallowed origin, got %q", got)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("Expected request still passed through, got %d", rec.Code)
	}
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	rec := corsRequest(t, []string{"*"}, http.MethodOptions, "https://anywhere.example")

	if rec.Code != http.StatusOK {
		t.Errorf("Expected OPTIONS answered directly with 200, got %d", rec.Code)
	}
}

func TestAllowedOrigins(t *testing.T) {
	if got := AllowedOrigins(""); len(got) != 1 || got[0] != "*" {
		t.Errorf("Expected wildcard for empty frontend URL, got %v", got)
	}
	if got := AllowedOrigins("https://studio.example"); len(got) != 1 || got[0] != "https://studio.example" {
		t.Errorf("Expected configured origin, got %v", got)
	}
}
