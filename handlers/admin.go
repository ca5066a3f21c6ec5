// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/models"
)

type AdminHandler struct {
	db  *sql.DB
	cfg cliparse.Config
	now func() time.Time
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{db: db, cfg: cfg, now: time.Now}
}

// CreateQuestion handles POST /admin/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text, err := validateText("question_text", req.QuestionText)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	pubDate := h.now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}

	id, err := insertQuestion(r.Context(), h.db, text, pubDate)
	if err != nil {
		slog.Error("failed to create question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create question")
		return
	}

	slog.Info("question created", "question_id", id, "pub_date", pubDate.UTC())

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// AddChoice handles POST /admin/questions/{id}/choices
// Choices may be added to future questions too.
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	questionID, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	var req models.CreateChoiceRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	text, err := validateText("choice_text", req.ChoiceText)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	exists, err := questionExists(r.Context(), h.db, questionID)
	if err != nil {
		slog.Error("failed to query question", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found")
		return
	}

	id, err := insertChoice(r.Context(), h.db, questionID, text)
	if err != nil {
		slog.Error("failed to create choice", "error", err, "question_id", questionID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create choice")
		return
	}

	slog.Info("choice added", "question_id", questionID, "choice_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.CreatedResponse{ID: id})
}

// validateText trims s and checks it is present and fits the column
func validateText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	if utf8.RuneCountInString(s) > models.MaxTextLength {
		return "", fmt.Errorf("%s must be at most %d characters", field, models.MaxTextLength)
	}
	return s, nil
}
