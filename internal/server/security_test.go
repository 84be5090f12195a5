package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestAuthMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := AuthMiddleware(apiKey, nil, NewAbuseMonitor(AbuseLimits{}))

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			path:           "/api/v1/mealplan/generate",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			path:           "/api/v1/mealplan/generate",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			path:           "/api/v1/recipes",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Public Path - Healthz",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Metrics",
			providedKey:    "",
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Public Path - Version",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	middleware := SecurityHeadersMiddleware()
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/v1/recipes", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headers := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	for header, expected := range headers {
		if got := rec.Header().Get(header); got != expected {
			t.Errorf("header %s: expected %q, got %q", header, expected, got)
		}
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	middleware := RequestSizeLimitMiddleware(16)
	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		if _, err := r.Body.Read(buf); err != nil && err.Error() == "http: request body too large" {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/mealplan/generate", strings.NewReader("tiny"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/mealplan/generate", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", rec.Code)
		}
	})
}

func TestAbuseMonitor_RateLimit(t *testing.T) {
	ctx := context.Background()
	monitor := NewAbuseMonitor(AbuseLimits{MaxRequestsPerWindow: 10})

	for i := 0; i < 10; i++ {
		if !monitor.Allow(ctx, "10.0.0.1") {
			t.Fatalf("request %d should have been allowed", i)
		}
	}

	if monitor.Allow(ctx, "10.0.0.1") {
		t.Error("request over the limit should have been blocked")
	}

	// A different IP is unaffected
	if !monitor.Allow(ctx, "10.0.0.2") {
		t.Error("other IPs should not be rate limited")
	}
}

func TestAbuseMonitor_WindowReset(t *testing.T) {
	ctx := context.Background()
	monitor := NewAbuseMonitor(AbuseLimits{MaxRequestsPerWindow: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		monitor.Allow(ctx, "10.0.0.1")
	}
	if monitor.Allow(ctx, "10.0.0.1") {
		t.Fatal("expected the limit to be hit before the window rolls")
	}

	monitor.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	if !monitor.Allow(ctx, "10.0.0.1") {
		t.Error("counters should reset once the window has passed")
	}
}

func TestAbuseMonitor_DefaultLimits(t *testing.T) {
	monitor := NewAbuseMonitor(AbuseLimits{})

	if monitor.limits.AuthFailureAlertThreshold != fallbackAuthFailureAlerts {
		t.Errorf("expected fallback alert threshold, got %d", monitor.limits.AuthFailureAlertThreshold)
	}
	if monitor.limits.MaxRequestsPerWindow != fallbackRequestsPerWindow {
		t.Errorf("expected fallback request limit, got %d", monitor.limits.MaxRequestsPerWindow)
	}
	if monitor.limits.Window != fallbackWindow {
		t.Errorf("expected fallback window, got %s", monitor.limits.Window)
	}
}

func TestClientIP(t *testing.T) {
	t.Run("direct connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.5:1234"

		if got := clientIP(req, nil); got != "203.0.113.5" {
			t.Errorf("expected 203.0.113.5, got %q", got)
		}
	})

	t.Run("forwarded header ignored from untrusted source", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.5:1234"
		req.Header.Set(HeaderForwardedFor, "198.51.100.7")

		if got := clientIP(req, nil); got != "203.0.113.5" {
			t.Errorf("expected 203.0.113.5, got %q", got)
		}
	})

	t.Run("forwarded header honored from trusted proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set(HeaderForwardedFor, "198.51.100.7, 198.51.100.8")

		if got := clientIP(req, []string{"10.0.0.1"}); got != "198.51.100.8" {
			t.Errorf("expected rightmost forwarded IP, got %q", got)
		}
	})
}
