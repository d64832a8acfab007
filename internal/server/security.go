package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/Dreadlight_Go/internal/logger"
)

// GuardConfig configures authentication and per-client rate limiting.
// An empty APIKey leaves the API open.
type GuardConfig struct {
	APIKey          string
	TrustedProxies  []string
	MaxRequests     int
	Window          time.Duration
	FailedAuthAlert int
}

// Guard authenticates requests and limits how fast each client may call
type Guard struct {
	cfg GuardConfig
	now func() time.Time

	mu          sync.Mutex
	failedAuth  map[string]int
	requests    map[string]int
	windowStart time.Time
}

// NewGuard fills unset limits with defaults
func NewGuard(cfg GuardConfig) *Guard {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultMaxRequests
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultRateWindow
	}
	if cfg.FailedAuthAlert <= 0 {
		cfg.FailedAuthAlert = DefaultFailedAuthAlert
	}
	g := &Guard{
		cfg:        cfg,
		now:        time.Now,
		failedAuth: make(map[string]int),
		requests:   make(map[string]int),
	}
	g.windowStart = g.now()
	return g
}

func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Auth rejects requests without the configured X-API-Key
func (g *Guard) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.cfg.APIKey == "" || isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		providedKey := r.Header.Get(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(providedKey), []byte(g.cfg.APIKey)) != 1 {
			ip := g.clientIP(r)
			g.recordFailedAuth(ip)

			logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
				"path", r.URL.Path,
				"has_key", providedKey != "",
				"ip", ip)

			http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimit answers 429 once a client exceeds MaxRequests within Window
func (g *Guard) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.allow(g.clientIP(r)) {
			http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *Guard) recordFailedAuth(ip string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetIfWindowPassed()
	g.failedAuth[ip]++
	if g.failedAuth[ip] == g.cfg.FailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", g.failedAuth[ip])
	}
}

func (g *Guard) allow(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.resetIfWindowPassed()
	g.requests[ip]++
	count := g.requests[ip]
	if count <= g.cfg.MaxRequests {
		return true
	}
	if count == g.cfg.MaxRequests+1 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "window", g.cfg.Window)
	}
	return false
}

// resetIfWindowPassed must be called with mu held
func (g *Guard) resetIfWindowPassed() {
	if g.now().Sub(g.windowStart) < g.cfg.Window {
		return
	}
	clear(g.requests)
	clear(g.failedAuth)
	g.windowStart = g.now()
}

// clientIP trusts X-Forwarded-For only when the direct peer is a trusted proxy,
// and then takes the rightmost hop.
func (g *Guard) clientIP(r *http.Request) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(g.cfg.TrustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}
	return remoteIP
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
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderContentType, HeaderValueNoSniff)
		w.Header().Set(HeaderFrameOptions, HeaderValueDeny)
		w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
		next.ServeHTTP(w, r)
	})
}
