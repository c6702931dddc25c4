package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "secret-key"
	handler := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())(okHandler)

	tests := []struct {
		name   string
		key    string
		path   string
		status int
	}{
		{"valid key", apiKey, "/api/v1/sessions/alice", http.StatusOK},
		{"wrong key", "wrong-key", "/api/v1/sessions/alice", http.StatusUnauthorized},
		{"missing key", "", "/api/v1/sessions/alice", http.StatusUnauthorized},
		{"healthz is public", "", "/healthz", http.StatusOK},
		{"verify is public", "", "/api/v1/verify", http.StatusOK},
		{"paytable is public", "", "/api/v1/paytable", http.StatusOK},
		{"metrics is public", "", "/metrics", http.StatusOK},
		{"public prefix needs a path boundary", "", "/api/v1/verifyall", http.StatusUnauthorized},
		{"events need a key", "", "/api/v1/events", http.StatusUnauthorized},
		{"admin needs a key", "", "/api/v1/admin/jackpots/rearm", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	rec := httptest.NewRecorder()
	SecurityHeadersMiddleware()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	want := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "SAMEORIGIN",
		"X-XSS-Protection":       "1; mode=block",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"Cache-Control":          "no-store",
	}
	for header, value := range want {
		assert.Equal(t, value, rec.Header().Get(header), header)
	}
}

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/alice", nil)
	req.RemoteAddr = "192.168.1.100:1234"

	for i := 0; i < RateLimitRequests; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/bob", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSuspiciousActivityDetector_WindowResets(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	detector := newDetectorWithClock(func() time.Time { return now })

	const ip = "10.0.0.7"
	for i := 0; i < RateLimitRequests; i++ {
		require.True(t, detector.RecordRequest(ip))
	}
	assert.False(t, detector.RecordRequest(ip))

	now = now.Add(RateLimitWindow + time.Second)
	assert.True(t, detector.RecordRequest(ip))
}

func TestSuspiciousActivityDetector_FailedAuthCounts(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	for i := 0; i < FailedAuthAlertCount; i++ {
		detector.RecordFailedAuth("10.0.0.8")
	}

	detector.mu.Lock()
	defer detector.mu.Unlock()
	assert.Equal(t, FailedAuthAlertCount, detector.clients["10.0.0.8"].failedAuth)
	assert.Zero(t, detector.clients["10.0.0.8"].requests)
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		trusted    []string
		want       string
	}{
		{"direct connection", "10.0.0.1:5555", "", nil, "10.0.0.1"},
		{"untrusted proxy ignores header", "10.0.0.1:5555", "1.2.3.4", nil, "10.0.0.1"},
		{"trusted proxy uses rightmost hop", "10.0.0.1:5555", "1.2.3.4, 5.6.7.8", []string{"10.0.0.1"}, "5.6.7.8"},
		{"trusted proxy without header", "10.0.0.1:5555", "", []string{"10.0.0.1"}, "10.0.0.1"},
		{"invalid forwarded hop", "10.0.0.1:5555", "1.2.3.4, not-an-ip", []string{"10.0.0.1"}, "10.0.0.1"},
		{"unparseable remote addr", "garbage", "", nil, "garbage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}

			assert.Equal(t, tt.want, extractIP(req, tt.trusted))
		})
	}
}
