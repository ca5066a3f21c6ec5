// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polls server.

Polls is a small voting site: published questions with choices, an index of
the latest questions, a detail page with a vote form and a results page.
Questions and choices are created through a JSON admin API.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Settings come from flags, then environment variables (a .env file is loaded
when present), then an optional YAML file given with -c or CONFIG_FILE:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:polls.db)
  - ADMIN_KEY (-admin-key): Enables the admin API
  - RECENT_WINDOW (-recent-window): How long a question counts as new (default: 24h)
  - INDEX_LIMIT (-index-limit): Questions shown on the index (default: 5)
  - VOTE_RATE (-vote-rate): Votes per second per client, 0 for no limit (default: 0)
  - VOTE_BURST (-vote-burst): Votes a client may cast at once (default: 5)

A key for ADMIN_KEY can be generated with:

	go run . -gen-admin-key

# Architecture

  - handlers: HTTP request handlers (index, detail, vote, results, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Logging, request ids, vote rate limiting, JSON helpers
  - metrics: Prometheus collectors and instrumentation
  - models: Domain and request/response types
  - auth: Admin key generation and validation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
