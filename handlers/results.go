// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg, now: time.Now}
}

// Results handles GET /polls/{id}/results/
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		notFound(w, r, "Question not found")
		return
	}

	q, err := publishedQuestion(r.Context(), h.db, id, h.now())
	if errors.Is(err, sql.ErrNoRows) {
		notFound(w, r, "Question not found")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", id)
		serverError(w, r)
		return
	}

	choices, err := choicesFor(r.Context(), h.db, q.ID)
	if err != nil {
		slog.Error("failed to load choices", "error", err, "question_id", q.ID)
		serverError(w, r)
		return
	}

	ctx := models.ResultsContext{
		Question: q,
		Choices:  choices,
	}
	for _, c := range choices {
		ctx.TotalVotes += c.Votes
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, ctx)
		return
	}

	render(w, http.StatusOK, "results.html", ctx)
}
