// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/models"
)

// TestDBURL is an in-memory SQLite database, private to its connection
const TestDBURL = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

// TestAdminKey is the admin key in GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(context.Background(), db.TypeSQLite, TestDBURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(conn, db.TypeSQLite), "failed to create schema")

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  TestDBURL,
		DatabaseType: cliparse.DatabaseSQLite,
		AdminKey:     TestAdminKey,
		RecentWindow: cliparse.DefaultRecentWindow,
		IndexLimit:   cliparse.DefaultIndexLimit,
		VoteBurst:    cliparse.DefaultVoteBurst,
	}
}

// CreateQuestion stores a question published the given number of days from
// now (negative for the past).
func CreateQuestion(t *testing.T, conn *sql.DB, questionText string, days int) models.Question {
	t.Helper()

	q := models.Question{
		QuestionText: questionText,
		PubDate:      time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour),
	}
	err := conn.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, q.PubDate).Scan(&q.ID)
	require.NoError(t, err, "failed to create test question")

	return q
}

// CreateChoice adds a choice with zero votes to a question
func CreateChoice(t *testing.T, conn *sql.DB, q models.Question, choiceText string) models.Choice {
	t.Helper()

	c := models.Choice{QuestionID: q.ID, ChoiceText: choiceText}
	err := conn.QueryRow(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, q.ID, choiceText).Scan(&c.ID)
	require.NoError(t, err, "failed to create test choice")

	return c
}

// Votes reads a choice's current vote count
func Votes(t *testing.T, conn *sql.DB, choiceID int64) int64 {
	t.Helper()

	var votes int64
	err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes)
	require.NoError(t, err, "failed to read votes")
	return votes
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// QuestionTexts maps questions to their text, for comparing lists
func QuestionTexts(questions []models.Question) []string {
	texts := make([]string, 0, len(questions))
	for _, q := range questions {
		texts = append(texts, q.String())
	}
	return texts
}
