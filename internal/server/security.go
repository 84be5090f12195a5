package server

import (
	"context"
	"crypto/subtle"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/freshplate/mealplan-api/internal/logger"
)

// Fallbacks for zero-valued AbuseLimits fields
const (
	fallbackAuthFailureAlerts = 5
	fallbackRequestsPerWindow = 1000
	fallbackWindow            = 5 * time.Minute
)

// AbuseLimits configures the per-IP monitor. Zero fields fall back to the
// package defaults.
type AbuseLimits struct {
	AuthFailureAlertThreshold int
	MaxRequestsPerWindow      int
	Window                    time.Duration
}

// AbuseMonitor keeps per-IP counters over a rolling window. One instance is
// shared by the auth and rate-limit middleware so a noisy client shows up in
// one place.
type AbuseMonitor struct {
	mu          sync.Mutex
	limits      AbuseLimits
	perIP       map[string]*ipActivity
	windowStart time.Time
	now         func() time.Time // swapped in tests to roll the window
}

type ipActivity struct {
	requests     int
	authFailures int
}

func NewAbuseMonitor(limits AbuseLimits) *AbuseMonitor {
	if limits.AuthFailureAlertThreshold <= 0 {
		limits.AuthFailureAlertThreshold = fallbackAuthFailureAlerts
	}
	if limits.MaxRequestsPerWindow <= 0 {
		limits.MaxRequestsPerWindow = fallbackRequestsPerWindow
	}
	if limits.Window <= 0 {
		limits.Window = fallbackWindow
	}
	return &AbuseMonitor{
		limits:      limits,
		perIP:       make(map[string]*ipActivity),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// RecordAuthFailure counts a failed key check, alerting once the IP crosses
// the threshold.
func (m *AbuseMonitor) RecordAuthFailure(ctx context.Context, ip string) {
	m.mu.Lock()
	activity := m.activityFor(ip)
	activity.authFailures++
	failures := activity.authFailures
	m.mu.Unlock()

	if failures >= m.limits.AuthFailureAlertThreshold {
		logger.FromContext(ctx).Warn(SecurityAlertFailedAuth, "ip", ip, "count", failures)
	}
}

// Allow counts one request and reports whether the IP is still under its
// window allowance.
func (m *AbuseMonitor) Allow(ctx context.Context, ip string) bool {
	m.mu.Lock()
	activity := m.activityFor(ip)
	activity.requests++
	requests := activity.requests
	m.mu.Unlock()

	if requests <= m.limits.MaxRequestsPerWindow {
		return true
	}
	if requests%100 == 0 { // log every 100th blocked request, not each one
		logger.FromContext(ctx).Warn(SecurityAlertHighRate,
			"ip", ip,
			"requests", requests,
			"window", m.limits.Window.String())
	}
	return false
}

// activityFor returns the counter row for ip, rolling the window over first.
// Caller must hold the mutex.
func (m *AbuseMonitor) activityFor(ip string) *ipActivity {
	if m.now().Sub(m.windowStart) > m.limits.Window {
		m.perIP = make(map[string]*ipActivity)
		m.windowStart = m.now()
	}
	activity, ok := m.perIP[ip]
	if !ok {
		activity = &ipActivity{}
		m.perIP[ip] = activity
	}
	return activity
}

// AuthMiddleware validates the API key on every non-public route
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				monitor.RecordAuthFailure(r.Context(), ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects requests from IPs over their window allowance
func RateLimitMiddleware(trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.Allow(r.Context(), clientIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	headers := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range headers {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, public := range PublicPaths {
		if strings.HasPrefix(path, public) {
			return true
		}
	}
	return false
}

// clientIP resolves the caller's address. X-Forwarded-For is only honored
// when the direct peer is a trusted proxy, and then only its rightmost hop.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}
