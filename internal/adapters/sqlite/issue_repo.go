// Package sqlite contains the SQLite implementation of the issue
// repository. With the default ":memory:" DSN it behaves exactly like the
// in-memory adapter; a file DSN is available for local experiments.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/secondary"
)

// Compile-time check that the repository satisfies the secondary port.
var _ secondary.IssueRepository = (*IssueRepository)(nil)

// IssueRepository implements secondary.IssueRepository with SQLite.
// Id monotonicity rides on the issues table's AUTOINCREMENT sequence.
type IssueRepository struct {
	db *sql.DB
}

// NewIssueRepository creates a new SQLite issue repository.
func NewIssueRepository(db *sql.DB) *IssueRepository {
	return &IssueRepository{db: db}
}

const issueSelectCols = "id, title, description, status"

// scanIssue scans an issue row.
func scanIssue(scanner interface {
	Scan(dest ...any) error
}) (*models.Issue, error) {
	var issue models.Issue
	if err := scanner.Scan(&issue.ID, &issue.Title, &issue.Description, &issue.Status); err != nil {
		return nil, err
	}
	return &issue, nil
}

// List retrieves every issue in insertion order.
func (r *IssueRepository) List(ctx context.Context) ([]models.Issue, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+issueSelectCols+" FROM issues ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	defer rows.Close()

	issues := []models.Issue{}
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue: %w", err)
		}
		issues = append(issues, *issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate issues: %w", err)
	}
	return issues, nil
}

// GetByID retrieves an issue by its id.
func (r *IssueRepository) GetByID(ctx context.Context, id string) (*models.Issue, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+issueSelectCols+" FROM issues WHERE id = ?",
		id,
	)

	issue, err := scanIssue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, secondary.ErrIssueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}
	return issue, nil
}

// Create inserts a new issue, deriving the public string id from the
// AUTOINCREMENT sequence so ids stay monotonic and are never reused.
func (r *IssueRepository) Create(ctx context.Context, fields secondary.IssueFields) (*models.Issue, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin create: %w", err)
	}
	defer tx.Rollback()

	// The id column is NOT NULL UNIQUE; insert a placeholder keyed to the
	// row, then rewrite it from the assigned sequence number.
	res, err := tx.ExecContext(ctx,
		"INSERT INTO issues (id, title, description, status) VALUES (hex(randomblob(8)), ?, ?, ?)",
		fields.Title, fields.Description, fields.Status,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	seq, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read assigned id: %w", err)
	}
	id := strconv.FormatInt(seq, 10)

	if _, err := tx.ExecContext(ctx, "UPDATE issues SET id = ? WHERE seq = ?", id, seq); err != nil {
		return nil, fmt.Errorf("failed to assign issue id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit create: %w", err)
	}

	return &models.Issue{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
	}, nil
}

// Replace overwrites every field of the issue at id, preserving the id.
func (r *IssueRepository) Replace(ctx context.Context, id string, fields secondary.IssueFields) (*models.Issue, error) {
	res, err := r.db.ExecContext(ctx,
		"UPDATE issues SET title = ?, description = ?, status = ? WHERE id = ?",
		fields.Title, fields.Description, fields.Status, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to replace issue: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, secondary.ErrIssueNotFound
	}

	return &models.Issue{
		ID:          id,
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
	}, nil
}

// Patch shallow-merges the provided fields onto the existing issue.
func (r *IssueRepository) Patch(ctx context.Context, id string, patch secondary.IssuePatch) (*models.Issue, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}

	return r.Replace(ctx, id, secondary.IssueFields{
		Title:       existing.Title,
		Description: existing.Description,
		Status:      existing.Status,
	})
}

// Delete removes the issue at id. The AUTOINCREMENT sequence is untouched,
// so the id is never reissued.
func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return secondary.ErrIssueNotFound
	}
	return nil
}

// Exists reports whether an issue with the given id is present.
func (r *IssueRepository) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, "SELECT 1 FROM issues WHERE id = ?", id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check issue existence: %w", err)
	}
	return true, nil
}
