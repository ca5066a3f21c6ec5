// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (default: file:polls.db)
  - DatabaseType: sqlite, postgres (lib/pq) or pgx (default: sqlite)
  - AdminKey: Key for the admin API; the API is disabled when empty
  - RecentWindow: How long a question counts as recently published (default: 24h)
  - IndexLimit: Number of questions on the index page (default: 5)
  - VoteRate: Votes per second from one client, 0 for no limit (default: 0)
  - VoteBurst: Votes one client may cast at once (default: 5)

# CLI Flags

	-c              YAML config file
	-p              Server port
	-d              Database URL
	-t              Database type
	--admin-key     Admin API key
	--recent-window Recent window (Go duration)
	--index-limit   Index page size
	--vote-rate     Per-client vote rate
	--vote-burst    Per-client vote burst
	--gen-admin-key Print a new admin key and exit

# Environment Variables

Flags fall back to environment variables, then to the YAML file:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	ADMIN_KEY     → --admin-key
	RECENT_WINDOW → --recent-window
	INDEX_LIMIT   → --index-limit
	VOTE_RATE     → --vote-rate
	VOTE_BURST    → --vote-burst
	CONFIG_FILE   → -c

A .env file in the working directory is loaded first if present. It never
overrides variables that are already set.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(conn, cfg)
*/
package cliparse
