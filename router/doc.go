// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polls app.

# Route Registration

NewRouter creates a ServeMux with all endpoints, wrapped with request metrics:

	handler := router.NewRouter(db, cfg)

# Endpoints

Operational:

	GET /health  - Pings the database (503 when unreachable)
	GET /metrics - Prometheus metrics
	GET /        - Redirects to /polls/

Polls (public):

	GET  /polls/                - Index of latest questions
	GET  /polls/{id}/           - Question detail with vote form
	GET  /polls/{id}/results/   - Vote counts
	POST /polls/{id}/vote/      - Cast a vote

Admin (requires X-Admin-Key, registered only when an admin key is configured):

	POST /admin/questions              - Create question
	POST /admin/questions/{id}/choices - Add choice

Votes are rate limited per client IP when a vote rate is configured.

Unknown paths get the ServeMux 404. Paths without the trailing slash are
redirected by the ServeMux to their canonical form.
*/
package router
