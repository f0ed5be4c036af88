package main

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultMaxBodySize caps MCP request bodies on the HTTP transport.
	DefaultMaxBodySize = 1 << 20

	// EnvAuthToken, when set, requires "Authorization: Bearer <token>" on HTTP requests.
	EnvAuthToken = "MCP_AUTH_TOKEN"
)

// SecurityConfig configures the HTTP security middleware.
type SecurityConfig struct {
	RateLimit   int    // requests per minute per client IP; 0 disables
	MaxBodySize int64  // bytes; 0 disables
	AuthToken   string // bearer token; empty disables
}

// SecurityMiddleware applies auth, rate limiting, and body size limits.
type SecurityMiddleware struct {
	next    http.Handler
	logger  *slog.Logger
	config  SecurityConfig
	limiter *RateLimiter
}

// NewSecurityMiddleware wraps next with the configured protections.
func NewSecurityMiddleware(next http.Handler, logger *slog.Logger, config SecurityConfig) *SecurityMiddleware {
	sm := &SecurityMiddleware{
		next:   next,
		logger: logger,
		config: config,
	}
	if config.RateLimit > 0 {
		sm.limiter = NewRateLimiter(config.RateLimit, time.Minute)
	}
	return sm
}

func (sm *SecurityMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if sm.config.AuthToken != "" && !validBearer(r.Header.Get("Authorization"), sm.config.AuthToken) {
		sm.logger.Warn("Rejected unauthenticated request", "remote", r.RemoteAddr)
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if sm.limiter != nil {
		ip := clientIP(r)
		if !sm.limiter.Allow(ip) {
			sm.logger.Warn("Rate limit exceeded", "ip", ip)
			w.Header().Set("Retry-After", "60")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
	}

	if sm.config.MaxBodySize > 0 && r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, sm.config.MaxBodySize)
	}

	sm.next.ServeHTTP(w, r)
}

// Close stops the rate limiter's cleanup goroutine.
func (sm *SecurityMiddleware) Close() {
	if sm.limiter != nil {
		sm.limiter.Close()
	}
}

func validBearer(header, token string) bool {
	got, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimiter keeps one token bucket per client IP. Each bucket holds rate
// tokens and refills at rate per interval.
type RateLimiter struct {
	rate     int
	interval time.Duration

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh    chan struct{}
	closeOnce sync.Once
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter creates a limiter allowing n requests per interval per IP.
func NewRateLimiter(n int, interval time.Duration) *RateLimiter {
	if n < 1 {
		n = 1
	}
	rl := &RateLimiter{
		rate:     n,
		interval: interval,
		limiters: make(map[string]*ipLimiter),
		stopCh:   make(chan struct{}),
	}
	go rl.cleanup()
	return rl
}

// Allow reports whether ip may make another request now.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rate.Every(rl.interval/time.Duration(rl.rate)), rl.rate)}
		rl.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	rl.mu.Unlock()

	return entry.limiter.Allow()
}

// Close stops background cleanup. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() { close(rl.stopCh) })
}

// cleanup drops limiters for IPs idle longer than interval; by then their
// buckets are full again.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(rl.interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for ip, entry := range rl.limiters {
				if now.Sub(entry.lastSeen) > rl.interval {
					delete(rl.limiters, ip)
				}
			}
			rl.mu.Unlock()
		}
	}
}
