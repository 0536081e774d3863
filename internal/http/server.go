// Package http exposes the ledger to clients as a JSON API: the screen
// views (home, transactions, analytics, categories) and the mutation
// commands the add/delete flows issue.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"sync"
	"time"

	"walletbuddy/internal/cache"
	"walletbuddy/internal/ledger"
	applog "walletbuddy/internal/log"
)

// Options tunes the server's middleware and caches.
type Options struct {
	RateLimitPerMinute int
	CacheSize          int
	CacheTTL           time.Duration

	// Now is the clock used for day labels and budget periods; tests
	// pin it. Defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	http.Server

	store  *ledger.Store
	loc    *time.Location
	logger *applog.Logger
	now    func() time.Time

	rateLimiter *rateLimiter

	// Memoized whole-screen projections, keyed by ledger generation so a
	// mutation can never leave a stale view servable.
	overviewCache  *cache.LRUCache[OverviewView]
	analyticsCache *cache.LRUCache[AnalyticsView]
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server bound to addr.
func NewServer(addr string, store *ledger.Store, loc *time.Location, logger *applog.Logger, opts Options) *Server {
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = 60
	}
	if opts.CacheSize <= 0 {
		opts.CacheSize = 100
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	if logger == nil {
		logger = applog.New(applog.DefaultLevel, applog.ComponentHTTP)
	}

	mux := http.NewServeMux()
	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:          store,
		loc:            loc,
		logger:         logger.WithComponent(applog.ComponentHTTP),
		now:            opts.Now,
		rateLimiter:    newRateLimiter(opts.RateLimitPerMinute),
		overviewCache:  cache.NewLRUCache[OverviewView](opts.CacheSize, opts.CacheTTL),
		analyticsCache: cache.NewLRUCache[AnalyticsView](opts.CacheSize, opts.CacheTTL),
	}

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/api/transactions", s.withCommon(s.handleTransactions))
	mux.HandleFunc("/api/transactions/", s.withCommon(s.handleTransactionByID))
	mux.HandleFunc("/api/categories", s.withCommon(s.handleCategories))
	mux.HandleFunc("/api/categories/", s.withCommon(s.handleCategoryByID))
	mux.HandleFunc("/api/overview", s.withCommon(s.handleOverview))
	mux.HandleFunc("/api/analytics", s.withCommon(s.handleAnalytics))

	return s
}

// withCommon adds request IDs, security headers, rate limiting of mutation
// requests, and request logging.
func (s *Server) withCommon(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		clientIP := extractClientIP(r)
		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		s.logger.InfoContext(ctx, "Request started",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldClientIP, clientIP,
			applog.FieldUserAgent, r.Header.Get("User-Agent"))

		if isMutation(r.Method) && !s.rateLimiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				applog.FieldClientIP, clientIP,
				applog.FieldMethod, r.Method,
				applog.FieldPath, r.URL.Path)
			w.Header().Set("Retry-After", "60")
			TooManyRequestsError().Write(w)
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.logger.InfoContext(ctx, "Request completed",
			applog.FieldRequestID, requestID,
			applog.FieldMethod, r.Method,
			applog.FieldPath, r.URL.Path,
			applog.FieldStatusCode, rw.statusCode,
			applog.FieldDuration, time.Since(start).Milliseconds())
	}
}

func isMutation(method string) bool {
	return method == http.MethodPost || method == http.MethodDelete || method == http.MethodPut
}

func extractClientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Simple in-memory rate limiter over client IPs.
type rateLimiter struct {
	mu        sync.Mutex
	perMinute int
	clients   map[string]*clientInfo
}

type clientInfo struct {
	lastRequest time.Time
	requests    int
}

func newRateLimiter(perMinute int) *rateLimiter {
	return &rateLimiter{
		perMinute: perMinute,
		clients:   make(map[string]*clientInfo),
	}
}

func (rl *rateLimiter) allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, exists := rl.clients[clientIP]
	if !exists || now.Sub(client.lastRequest) > time.Minute {
		rl.clients[clientIP] = &clientInfo{lastRequest: now, requests: 1}
		rl.dropStale(now)
		return true
	}

	client.requests++
	client.lastRequest = now
	return client.requests <= rl.perMinute
}

// dropStale keeps the client map bounded without a cleanup goroutine.
func (rl *rateLimiter) dropStale(now time.Time) {
	cutoff := now.Add(-10 * time.Minute)
	for ip, client := range rl.clients {
		if client.lastRequest.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}
