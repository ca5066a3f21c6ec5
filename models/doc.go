// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, view, request and response types.

# Domain Types

  - Question: question_text and pub_date
  - Choice: choice_text and votes, belonging to one question

A question is published once pub_date is not after the current time.
WasPublishedRecently additionally requires pub_date to fall within a
configurable window (DefaultRecentWindow, 24h):

	recent := q.WasPublishedRecently(time.Now(), cfg.RecentWindow)

# View Contexts

Handlers fill these and either render a template or return them as JSON:

  - IndexContext: latest_question_list
  - DetailContext: question, choices, error_message
  - ResultsContext: question, choices, total_votes

# Request and Response Types

  - VoteRequest: choice
  - CreateQuestionRequest: question_text, pub_date
  - CreateChoiceRequest: choice_text
  - CreatedResponse: id
  - ErrorResponse: error, message
*/
package models
