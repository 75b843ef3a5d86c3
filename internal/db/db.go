// Package db owns the SQLite connection and schema for the sqlite-backed
// record store. The default DSN is ":memory:", matching the board's
// no-durability model; a file path can be supplied for local experiments.
package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultDSN keeps the store in process memory, like the default adapter.
const DefaultDSN = ":memory:"

// Open opens a SQLite database at dsn and initializes the schema.
//
// The pool is capped at a single connection: with ":memory:" every
// connection would otherwise see its own empty database, and the store's
// mutation model assumes no parallel writers anyway.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	database, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	database.SetMaxOpenConns(1)

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := database.Exec(GetSchemaSQL()); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}
