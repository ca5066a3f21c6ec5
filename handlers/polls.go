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

type PollHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewPollHandler(db *sql.DB, cfg cliparse.Config) *PollHandler {
	return &PollHandler{db: db, cfg: cfg, now: time.Now}
}

type indexRow struct {
	models.Question
	Recent bool
}

type indexPage struct {
	Questions []indexRow
}

// Index handles GET /polls/
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	questions, err := latestQuestions(r.Context(), h.db, now, h.cfg.IndexLimit)
	if err != nil {
		slog.Error("failed to load index", "error", err)
		serverError(w, r)
		return
	}

	if middleware.WantsJSON(r) {
		middleware.JSONResponse(w, http.StatusOK, models.IndexContext{
			LatestQuestionList: questions,
		})
		return
	}

	page := indexPage{Questions: make([]indexRow, 0, len(questions))}
	for _, q := range questions {
		page.Questions = append(page.Questions, indexRow{
			Question: q,
			Recent:   q.WasPublishedRecently(now, h.cfg.RecentWindow),
		})
	}

	render(w, http.StatusOK, "index.html", page)
}

// Detail handles GET /polls/{id}/
// Future questions are hidden the same way as missing ones.
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
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

	renderDetail(w, r, h.db, q, "")
}

// renderDetail shows a question with its choices, optionally with an error
// from a rejected vote.
func renderDetail(w http.ResponseWriter, r *http.Request, db *sql.DB, q models.Question, errorMessage string) {
	choices, err := choicesFor(r.Context(), db, q.ID)
	if err != nil {
		slog.Error("failed to load choices", "error", err, "question_id", q.ID)
		serverError(w, r)
		return
	}

	ctx := models.DetailContext{
		Question:     q,
		Choices:      choices,
		ErrorMessage: errorMessage,
	}

	if jsonClient(r) {
		status := http.StatusOK
		if errorMessage != "" {
			status = http.StatusBadRequest
		}
		middleware.JSONResponse(w, status, ctx)
		return
	}

	render(w, http.StatusOK, "detail.html", ctx)
}
