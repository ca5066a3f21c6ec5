// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const memoryURL = "file::memory:?_pragma=foreign_keys(1)&_time_format=sqlite"

func TestDriverName(t *testing.T) {
	tests := []struct {
		dbType string
		driver string
	}{
		{TypeSQLite, "sqlite"},
		{TypePostgres, "postgres"},
		{TypePgx, "pgx"},
	}

	for _, tt := range tests {
		t.Run(tt.dbType, func(t *testing.T) {
			driver, err := DriverName(tt.dbType)
			require.NoError(t, err)
			assert.Equal(t, tt.driver, driver)
		})
	}

	_, err := DriverName("mysql")
	assert.Error(t, err)
}

func TestCreateSchema_SQLite(t *testing.T) {
	conn, err := Open(context.Background(), TypeSQLite, memoryURL)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, CreateSchema(conn, TypeSQLite))
	// Idempotent
	require.NoError(t, CreateSchema(conn, TypeSQLite))

	var questionID int64
	err = conn.QueryRow(`
		INSERT INTO question (question_text, pub_date) VALUES ($1, $2) RETURNING id
	`, "What's new?", time.Now().UTC()).Scan(&questionID)
	require.NoError(t, err)

	_, err = conn.Exec(`INSERT INTO choice (question_id, choice_text) VALUES ($1, $2)`, questionID, "Not much")
	require.NoError(t, err)

	var votes int64
	err = conn.QueryRow(`SELECT votes FROM choice WHERE question_id = $1`, questionID).Scan(&votes)
	require.NoError(t, err)
	assert.Zero(t, votes)

	// Choices cascade with their question
	_, err = conn.Exec(`DELETE FROM question WHERE id = $1`, questionID)
	require.NoError(t, err)

	var count int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM choice`).Scan(&count))
	assert.Zero(t, count)
}

func TestCreateSchema_ForeignKeyEnforced(t *testing.T) {
	conn, err := Open(context.Background(), TypeSQLite, memoryURL)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, CreateSchema(conn, TypeSQLite))

	_, err = conn.Exec(`INSERT INTO choice (question_id, choice_text) VALUES ($1, $2)`, 999, "Orphan")
	assert.Error(t, err)
}

func TestCreateSchema_PostgresStatements(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec("(?s)CREATE TABLE IF NOT EXISTS question.*BIGSERIAL").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, CreateSchema(conn, TypePostgres))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSchema_Error(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	mock.ExpectExec(".*").WillReturnError(errors.New("disk full"))

	err = CreateSchema(conn, TypeSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create schema")
}

func TestOpen_UnsupportedType(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	assert.Error(t, err)
}
