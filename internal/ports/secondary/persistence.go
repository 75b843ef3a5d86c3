// Package secondary defines the secondary ports (driven adapters) for the
// kanban application: the persistence boundary the record store adapters
// implement.
package secondary

import (
	"context"
	"errors"

	"github.com/example/kanban/internal/models"
)

// ErrIssueNotFound is returned by repository operations that target an id
// with no corresponding record. It is the only failure an in-memory
// repository produces; callers detect it with errors.Is.
var ErrIssueNotFound = errors.New("issue not found")

// IssueFields carries everything an issue holds except its identity.
// Used for create and full replace, where the store owns the id.
type IssueFields struct {
	Title       string
	Description string
	Status      string
}

// IssuePatch is a shallow partial update. Nil fields are left untouched.
// An id supplied by the caller is never part of a patch; identity is fixed.
type IssuePatch struct {
	Title       *string
	Description *string
	Status      *string
}

// IssueRepository is the record store port. Implementations own the
// canonical collection, assign ids as stringified monotonically increasing
// integers, and never reissue an id after a delete.
//
// Implementations must be safe for concurrent use: every mutation is
// guarded so the id-uniqueness and monotonic-counter invariants hold under
// parallel request handling.
type IssueRepository interface {
	// List returns a defensive copy of the full collection in insertion
	// order. It never fails for the in-memory adapter.
	List(ctx context.Context) ([]models.Issue, error)

	// GetByID retrieves one issue, or ErrIssueNotFound.
	GetByID(ctx context.Context, id string) (*models.Issue, error)

	// Create assigns the next id, appends the record, and returns it.
	Create(ctx context.Context, fields IssueFields) (*models.Issue, error)

	// Replace overwrites every field of the record at id, preserving the
	// id itself. Returns ErrIssueNotFound if no record exists.
	Replace(ctx context.Context, id string, fields IssueFields) (*models.Issue, error)

	// Patch shallow-merges the provided fields onto the existing record.
	// Returns ErrIssueNotFound if no record exists.
	Patch(ctx context.Context, id string, patch IssuePatch) (*models.Issue, error)

	// Delete removes the record. The id is never reissued afterwards.
	// Returns ErrIssueNotFound if no record exists.
	Delete(ctx context.Context, id string) error

	// Exists reports whether a record with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)
}
