// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Burst(t *testing.T) {
	// One token per minute: only the burst gets through
	rl := NewRateLimiter(1.0/60, 3, time.Hour)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d", i)
	}
	assert.False(t, rl.Allow("10.0.0.1"))

	// Clients are limited independently
	assert.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	rl := NewRateLimiter(1, 1, 0)

	rl.Allow("10.0.0.1")
	time.Sleep(time.Millisecond)
	rl.Sweep()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(1.0/60, 1, time.Hour)
	calls := 0
	handler := rl.Limit(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusSeeOther)
	})

	send := func(forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/polls/1/vote/", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	assert.Equal(t, http.StatusSeeOther, send("203.0.113.7").Code)

	w := send("203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusSeeOther, send("203.0.113.8").Code)
	assert.Equal(t, 2, calls)
}
