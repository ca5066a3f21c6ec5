// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the limiter map; past it idle clients are dropped
const maxTrackedClients = 10000

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rate    rate.Limit
	burst   int
	idle    time.Duration
}

// NewRateLimiter allows perSecond requests per client with the given burst.
// Clients idle for longer than idle are forgotten on the next sweep.
func NewRateLimiter(perSecond float64, burst int, idle time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		rate:    rate.Limit(perSecond),
		burst:   burst,
		idle:    idle,
	}
}

// Allow reports whether the client may make a request now
func (rl *RateLimiter) Allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	c, ok := rl.clients[client]
	if !ok {
		if len(rl.clients) >= maxTrackedClients {
			rl.sweepLocked(now)
		}
		c = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Sweep drops clients not seen within the idle period
func (rl *RateLimiter) Sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.sweepLocked(time.Now())
}

func (rl *RateLimiter) sweepLocked(now time.Time) {
	for key, c := range rl.clients {
		if now.Sub(c.lastSeen) > rl.idle {
			delete(rl.clients, key)
		}
	}
}

// Limit wraps a handler, answering 429 once a client exceeds its rate
func (rl *RateLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client := GetClientIP(r)
		if !rl.Allow(client) {
			slog.Warn("rate limit exceeded", "client", client, "path", r.URL.Path)
			w.Header().Set("Retry-After", strconv.Itoa(rl.retryAfter()))
			ErrorResponse(w, http.StatusTooManyRequests, "Too many requests")
			return
		}
		next(w, r)
	}
}

// retryAfter is the whole seconds until one more token is available
func (rl *RateLimiter) retryAfter() int {
	if rl.rate <= 0 {
		return 1
	}
	secs := int(math.Ceil(1/float64(rl.rate) - 1e-9))
	if secs < 1 {
		secs = 1
	}
	return secs
}
