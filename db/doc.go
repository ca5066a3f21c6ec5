// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Drivers

Open picks the database/sql driver from the configured type:

  - sqlite: modernc.org/sqlite (pure Go, the default)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - question: question_text and pub_date
  - choice: choice_text and vote count, owned by one question

	question 1──* choice

Deleting a question deletes its choices. pub_date is written in UTC.
*/
package db
