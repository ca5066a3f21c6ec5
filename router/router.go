// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/handlers"
	"github.com/danielhkuo/polls/metrics"
	"github.com/danielhkuo/polls/middleware"
)

const (
	healthTimeout   = 2 * time.Second
	voterIdleWindow = 10 * time.Minute
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(db, cfg)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	resultsHandler := handlers.NewResultsHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			slog.Warn("health check failed", "error", err)
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /metrics", metrics.Handler())

	// Polls (public)
	mux.HandleFunc("GET /polls/{$}", middleware.WithLogging(pollHandler.Index))
	mux.HandleFunc("GET /polls/{id}/{$}", middleware.WithLogging(pollHandler.Detail))
	mux.HandleFunc("GET /polls/{id}/results/{$}", middleware.WithLogging(resultsHandler.Results))

	vote := votingHandler.Vote
	if cfg.VoteRate > 0 {
		vote = middleware.NewRateLimiter(cfg.VoteRate, cfg.VoteBurst, voterIdleWindow).Limit(vote)
	}
	mux.HandleFunc("POST /polls/{id}/vote/{$}", middleware.WithLogging(vote))

	// Admin API, only with a configured key
	if cfg.AdminKey != "" {
		mux.HandleFunc("POST /admin/questions",
			middleware.WithLogging(auth.RequireAdminKey(cfg.AdminKey, adminHandler.CreateQuestion)))
		mux.HandleFunc("POST /admin/questions/{id}/choices",
			middleware.WithLogging(auth.RequireAdminKey(cfg.AdminKey, adminHandler.AddChoice)))
	} else {
		slog.Info("admin API disabled, no admin key configured")
	}

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, handlers.IndexURL, http.StatusFound)
	})

	return metrics.InstrumentHandler(mux)
}
