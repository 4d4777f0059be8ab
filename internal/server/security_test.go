package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testAPIKey = "test-api-key"

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		providedKey    string
		expectedStatus int
	}{
		{"valid key", "/api/v1/reward/currency", testAPIKey, http.StatusOK},
		{"wrong key", "/api/v1/reward/currency", "wrong", http.StatusUnauthorized},
		{"missing key", "/api/v1/reward/currency", "", http.StatusUnauthorized},
		{"healthz bypasses auth", "/healthz", "", http.StatusOK},
		{"readyz bypasses auth", "/readyz", "", http.StatusOK},
		{"metrics bypasses auth", "/metrics", "", http.StatusOK},
		{"swagger bypasses auth", "/swagger/index.html", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := AuthMiddleware(testAPIKey, nil, NewSuspiciousActivityDetector())
			handler := mw(okHandler())

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRateLimitMiddleware(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := RateLimitMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reward/currency", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	for i := 0; i < requestRateLimit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expected       string
	}{
		{"direct connection", "203.0.113.9:5000", "", nil, "203.0.113.9"},
		{
			"forwarded header ignored from untrusted peer",
			"203.0.113.9:5000", "198.51.100.1", nil, "203.0.113.9",
		},
		{
			"forwarded header honored from trusted proxy",
			"10.0.0.2:5000", "198.51.100.1", []string{"10.0.0.2"}, "198.51.100.1",
		},
		{
			"rightmost forwarded entry wins",
			"10.0.0.2:5000", "198.51.100.1, 198.51.100.7", []string{"10.0.0.2"}, "198.51.100.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.expected, extractIP(req, tt.trustedProxies))
		})
	}
}
