// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"time"

	"github.com/danielhkuo/polls/models"
)

// latestQuestions returns up to limit of the most recently published
// questions that have at least one choice, oldest first.
func latestQuestions(ctx context.Context, db *sql.DB, now time.Time, limit int) ([]models.Question, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT q.id, q.question_text, q.pub_date
		FROM question q
		WHERE q.pub_date <= $1
		  AND EXISTS (SELECT 1 FROM choice c WHERE c.question_id = q.id)
		ORDER BY q.pub_date DESC, q.id DESC
		LIMIT $2
	`, now.UTC(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.QuestionText, &q.PubDate); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		q.PubDate = q.PubDate.UTC()
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over questions: %w", err)
	}

	slices.Reverse(questions)
	return questions, nil
}

// publishedQuestion loads a question that is visible at now.
// Unknown and future questions both return sql.ErrNoRows.
func publishedQuestion(ctx context.Context, db *sql.DB, id int64, now time.Time) (models.Question, error) {
	var q models.Question
	err := db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1 AND pub_date <= $2
	`, id, now.UTC()).Scan(&q.ID, &q.QuestionText, &q.PubDate)
	if err != nil {
		return models.Question{}, err
	}
	q.PubDate = q.PubDate.UTC()
	return q, nil
}

// choicesFor lists a question's choices in creation order.
func choicesFor(ctx context.Context, db *sql.DB, questionID int64) ([]models.Choice, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over choices: %w", err)
	}

	return choices, nil
}

// castVote increments a choice's vote count in place. A choice that does not
// belong to the question returns sql.ErrNoRows.
func castVote(ctx context.Context, db *sql.DB, questionID, choiceID int64) (models.Choice, error) {
	var c models.Choice
	err := db.QueryRowContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
		RETURNING id, question_id, choice_text, votes
	`, choiceID, questionID).Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes)
	if err != nil {
		return models.Choice{}, err
	}
	return c, nil
}

// insertQuestion stores a question and returns its id.
func insertQuestion(ctx context.Context, db *sql.DB, text string, pubDate time.Time) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, pubDate.UTC()).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert question: %w", err)
	}
	return id, nil
}

// insertChoice stores a choice with zero votes and returns its id.
func insertChoice(ctx context.Context, db *sql.DB, questionID int64, text string) (int64, error) {
	var id int64
	err := db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert choice: %w", err)
	}
	return id, nil
}

// questionExists reports whether a question with the id exists, published or not.
func questionExists(ctx context.Context, db *sql.DB, id int64) (bool, error) {
	var one int
	err := db.QueryRowContext(ctx, `SELECT 1 FROM question WHERE id = $1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query question: %w", err)
	}
	return true, nil
}
