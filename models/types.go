// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// MaxTextLength bounds question_text and choice_text
const MaxTextLength = 200

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

// View contexts, rendered as HTML or returned as JSON

type IndexContext struct {
	LatestQuestionList []Question `json:"latest_question_list"`
}

type DetailContext struct {
	Question     Question `json:"question"`
	Choices      []Choice `json:"choices"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

type ResultsContext struct {
	Question   Question `json:"question"`
	Choices    []Choice `json:"choices"`
	TotalVotes int64    `json:"total_votes"`
}

// Request types

type VoteRequest struct {
	Choice int64 `json:"choice"`
}

type CreateQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date,omitempty"` // defaults to now
}

type CreateChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

// Response types

type CreatedResponse struct {
	ID int64 `json:"id"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
