package db

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/example/kanban/internal/models"
)

// SeedIssues replaces the issues table with the given dataset and positions
// the id counter so the next insert receives id strconv.Itoa(nextID).
// Records are inserted with explicit sequence numbers matching their ids.
func SeedIssues(database *sql.DB, issues []models.Issue, nextID int) error {
	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM issues"); err != nil {
		return fmt.Errorf("failed to clear issues: %w", err)
	}

	for _, issue := range issues {
		seq, err := strconv.Atoi(issue.ID)
		if err != nil {
			return fmt.Errorf("seed issue id %q is not numeric: %w", issue.ID, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO issues (seq, id, title, description, status) VALUES (?, ?, ?, ?, ?)",
			seq, issue.ID, issue.Title, issue.Description, issue.Status,
		); err != nil {
			return fmt.Errorf("failed to seed issue %s: %w", issue.ID, err)
		}
	}

	// AUTOINCREMENT tracks the high-water mark in sqlite_sequence; pin it so
	// the next assigned id is exactly nextID even when the dataset is sparse.
	// sqlite_sequence has no unique index, so upsert manually.
	res, err := tx.Exec("UPDATE sqlite_sequence SET seq = ? WHERE name = 'issues'", nextID-1)
	if err != nil {
		return fmt.Errorf("failed to position id counter: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		if _, err := tx.Exec("INSERT INTO sqlite_sequence (name, seq) VALUES ('issues', ?)", nextID-1); err != nil {
			return fmt.Errorf("failed to position id counter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
