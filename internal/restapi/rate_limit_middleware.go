package restapi

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/DvijDesai0102/CSC210-Project/internal/models"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-API-key rate limiting
type RateLimitMiddleware struct {
	limiters    map[string]*rate.Limiter
	mu          sync.RWMutex
	rateLimit   rate.Limit
	burstSize   int
	cleanupTick *time.Ticker
	exemptKeys  map[string]bool
}

// NewRateLimitMiddleware allows ratePerSecond requests per interval for each API key,
// with bursts of the same size. Zero blocks every request and a negative rate disables limiting.
// Requests carrying one of exemptKeys are never limited.
func NewRateLimitMiddleware(ratePerSecond int, interval time.Duration, exemptKeys ...string) func(http.Handler) http.Handler {
	return newRateLimiter(ratePerSecond, interval, exemptKeys...).rateLimitHandler
}

func newRateLimiter(ratePerSecond int, interval time.Duration, exemptKeys ...string) *RateLimitMiddleware {
	var rateLimit rate.Limit
	switch {
	case ratePerSecond < 0:
		rateLimit = rate.Inf
	case ratePerSecond == 0:
		rateLimit = 0
	default:
		rateLimit = rate.Every(interval / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:    make(map[string]*rate.Limiter),
		rateLimit:   rateLimit,
		burstSize:   ratePerSecond,
		cleanupTick: time.NewTicker(5 * time.Minute),
		exemptKeys:  make(map[string]bool, len(exemptKeys)),
	}
	for _, key := range exemptKeys {
		middleware.exemptKeys[key] = true
	}

	go middleware.cleanup()

	return middleware
}

// getLimiter gets or creates a rate limiter for the given API key
func (rl *RateLimitMiddleware) getLimiter(apiKey string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[apiKey]
	rl.mu.RUnlock()

	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := rl.limiters[apiKey]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[apiKey] = limiter

	return limiter
}

func (rl *RateLimitMiddleware) rateLimitHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.URL.Query().Get("key")
		if apiKey == "" {
			apiKey = "__no_key__"
		}

		if rl.exemptKeys[apiKey] {
			next.ServeHTTP(w, r)
			return
		}

		if !rl.getLimiter(apiKey).Allow() {
			rl.sendRateLimitExceeded(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// retryAfter is the time until one more token is available, in whole seconds.
func (rl *RateLimitMiddleware) retryAfter() int {
	switch rl.rateLimit {
	case 0:
		return int(time.Hour.Seconds())
	case rate.Inf:
		return 1
	}
	seconds := int(math.Ceil(1 / float64(rl.rateLimit)))
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// sendRateLimitExceeded sends a 429 Too Many Requests response
func (rl *RateLimitMiddleware) sendRateLimitExceeded(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.burstSize))
	w.Header().Set("X-RateLimit-Remaining", "0")
	w.WriteHeader(http.StatusTooManyRequests)

	response := models.NewResponse(http.StatusTooManyRequests, nil, "Rate limit exceeded. Please try again later.")
	_ = json.NewEncoder(w).Encode(response)
}

// cleanup periodically drops limiters that are full again, i.e. idle keys.
func (rl *RateLimitMiddleware) cleanup() {
	for range rl.cleanupTick.C {
		rl.removeIdleLimiters()
	}
}

func (rl *RateLimitMiddleware) removeIdleLimiters() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, limiter := range rl.limiters {
		if limiter.Tokens() >= float64(rl.burstSize) {
			delete(rl.limiters, key)
		}
	}
}

func (rl *RateLimitMiddleware) limiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

// Stop stops the cleanup goroutine
func (rl *RateLimitMiddleware) Stop() {
	if rl.cleanupTick != nil {
		rl.cleanupTick.Stop()
	}
}
