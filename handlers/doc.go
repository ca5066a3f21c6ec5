// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the polls app.

# Handler Types

Each handler is a struct with database and config dependencies:

  - PollHandler: Index and detail pages
  - VotingHandler: Vote submission
  - ResultsHandler: Vote counts for a question
  - AdminHandler: JSON API for creating questions and choices

Handlers are created via constructor functions that accept *sql.DB and Config:

	pollHandler := handlers.NewPollHandler(db, cfg)

# Visibility

A question is published once its pub_date is not in the future. Unpublished
questions answer 404 on every public page, exactly like unknown ids.

The index lists the most recent IndexLimit published questions that have at
least one choice, oldest first. With nothing to show it renders
NoPollsMessage.

# Voting Flow

	GET  /polls/{id}/         → Detail (form with one radio per choice)
	POST /polls/{id}/vote/    → Vote (303 to results)
	GET  /polls/{id}/results/ → Results

A vote without a valid choice re-renders the detail page with
NoChoiceMessage instead of failing.

# Content Negotiation

Pages render HTML from embedded templates. Clients sending
"Accept: application/json", or a JSON body, get the page context as JSON
instead. Admin endpoints always speak JSON.
*/
package handlers
