package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter is a fixed-window per-client limiter backed by Redis.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRateLimiter(client *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  limit,
		window: window,
	}
}

// Handler rejects requests above the limit with 429. Limiter failures fail
// open so a Redis outage cannot take the service down with it.
func (l *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		windowSecs := int64(l.window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%d", clientIP(r), time.Now().Unix()/windowSecs)

		count, err := l.client.Incr(r.Context(), key).Result()
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		if count == 1 {
			l.client.Expire(r.Context(), key, l.window)
		}

		if count > int64(l.limit) {
			w.Header().Set("Retry-After", strconv.FormatInt(windowSecs, 10))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"status":429,"error":"Too Many Requests","message":"rate limit exceeded"}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the
// connection's remote address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if ip, _, found := strings.Cut(fwd, ","); found {
			return strings.TrimSpace(ip)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
