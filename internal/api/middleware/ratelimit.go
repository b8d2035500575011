package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"Scoops/internal/api/handlers"
)

// WriteLimiter throttles mutating requests per client IP. The session model
// is anonymous, so the IP is the only stable client identity available.
// Reads are never throttled.
type WriteLimiter struct {
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	mu      sync.Mutex
}

type bucket struct {
	resetAt time.Time
	used    int
}

// NewWriteLimiter allows at most limit mutating requests per client within
// each window.
func NewWriteLimiter(limit int, window time.Duration) *WriteLimiter {
	wl := &WriteLimiter{
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
	}
	go wl.sweep()
	return wl
}

// Middleware applies the limit to POST, PUT, PATCH and DELETE requests
func (wl *WriteLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		default:
			next.ServeHTTP(w, r)
			return
		}

		retryAfter, ok := wl.take(clientIP(r))
		if !ok {
			w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())+1))
			handlers.WriteError(w, http.StatusTooManyRequests, "RateLimited", "Too many requests. Please slow down.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// take consumes one slot for the client. When the limit is reached it
// returns the time remaining until the window resets.
func (wl *WriteLimiter) take(clientID string) (time.Duration, bool) {
	wl.mu.Lock()
	defer wl.mu.Unlock()

	now := time.Now().UTC()

	b, exists := wl.buckets[clientID]
	if !exists || now.After(b.resetAt) {
		wl.buckets[clientID] = &bucket{used: 1, resetAt: now.Add(wl.window)}
		return 0, true
	}

	if b.used < wl.limit {
		b.used++
		return 0, true
	}

	return b.resetAt.Sub(now), false
}

// sweep drops expired buckets so idle clients do not accumulate
func (wl *WriteLimiter) sweep() {
	ticker := time.NewTicker(wl.window)
	defer ticker.Stop()

	for range ticker.C {
		wl.mu.Lock()
		now := time.Now().UTC()
		for clientID, b := range wl.buckets {
			if now.After(b.resetAt) {
				delete(wl.buckets, clientID)
			}
		}
		wl.mu.Unlock()
	}
}

// clientIP resolves the client address, preferring proxy headers
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
