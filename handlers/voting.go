// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/metrics"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg, now: time.Now}
}

// Vote handles POST /polls/{id}/vote/
// Takes a form field "choice" or a JSON body {"choice": id}.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
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

	choiceID := selectedChoice(r)
	if choiceID <= 0 {
		renderDetail(w, r, h.db, q, NoChoiceMessage)
		return
	}

	choice, err := castVote(r.Context(), h.db, q.ID, choiceID)
	if errors.Is(err, sql.ErrNoRows) {
		// Choice belongs to another question or does not exist
		renderDetail(w, r, h.db, q, NoChoiceMessage)
		return
	}
	if err != nil {
		slog.Error("failed to record vote", "error", err, "question_id", q.ID, "choice_id", choiceID)
		serverError(w, r)
		return
	}

	metrics.RecordVote()
	slog.Info("vote recorded", "question_id", q.ID, "choice_id", choice.ID, "votes", choice.Votes)

	if jsonClient(r) {
		middleware.JSONResponse(w, http.StatusOK, choice)
		return
	}

	// 303 so a browser refresh does not post the vote twice
	http.Redirect(w, r, ResultsURL(q.ID), http.StatusSeeOther)
}

// selectedChoice returns the posted choice id, or 0 when none was sent
func selectedChoice(r *http.Request) int64 {
	if middleware.IsJSONBody(r) {
		var req models.VoteRequest
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			return 0
		}
		return req.Choice
	}

	choiceID, err := strconv.ParseInt(r.PostFormValue("choice"), 10, 64)
	if err != nil {
		return 0
	}
	return choiceID
}
