// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status,
duration_ms). Every request gets an id, taken from X-Request-ID when the
client sends one and generated otherwise. The id is echoed back in the
response header.

# Content Negotiation

Views render HTML unless the client sends Accept: application/json:

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, ctx)
		return
	}

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Rate Limiting

RateLimiter throttles a handler per client IP using token buckets:

	limiter := middleware.NewRateLimiter(0.5, 5, 10*time.Minute)
	mux.HandleFunc("POST /polls/{id}/vote/{$}", limiter.Limit(handler))

Clients over their rate get 429 with a Retry-After header.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
