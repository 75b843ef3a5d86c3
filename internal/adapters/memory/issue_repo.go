// Package memory contains the in-memory implementation of the issue
// repository. It is the authoritative record store for the lifetime of the
// process; nothing survives a restart.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/secondary"
)

// Compile-time check that the repository satisfies the secondary port.
var _ secondary.IssueRepository = (*IssueRepository)(nil)

// IssueRepository holds the canonical issue collection in insertion order.
// The next-id counter only ever increases, so an id deleted from the
// collection is never handed out again. All operations are linear scans;
// the collection is small and unbounded growth is out of scope.
type IssueRepository struct {
	mu     sync.Mutex
	issues []models.Issue
	nextID int
}

// NewIssueRepository creates an empty repository. Ids start at "1".
func NewIssueRepository() *IssueRepository {
	return &IssueRepository{nextID: 1}
}

// Seed replaces the collection wholesale and positions the id counter.
// Used once at startup to load the example dataset.
func (r *IssueRepository) Seed(issues []models.Issue, nextID int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.issues = make([]models.Issue, len(issues))
	copy(r.issues, issues)
	r.nextID = nextID
}

// List returns a defensive copy of the full collection in insertion order.
func (r *IssueRepository) List(_ context.Context) ([]models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Issue, len(r.issues))
	copy(out, r.issues)
	return out, nil
}

// GetByID retrieves one issue by id equality.
func (r *IssueRepository) GetByID(_ context.Context, id string) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.issues {
		if r.issues[i].ID == id {
			issue := r.issues[i]
			return &issue, nil
		}
	}
	return nil, secondary.ErrIssueNotFound
}

// Create assigns the next id, appends the record, and returns a copy.
// No validation happens at this layer.
func (r *IssueRepository) Create(_ context.Context, fields secondary.IssueFields) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	issue := models.Issue{
		ID:          strconv.Itoa(r.nextID),
		Title:       fields.Title,
		Description: fields.Description,
		Status:      fields.Status,
	}
	r.nextID++
	r.issues = append(r.issues, issue)

	out := issue
	return &out, nil
}

// Replace overwrites every field of the record at id, keeping the id.
func (r *IssueRepository) Replace(_ context.Context, id string, fields secondary.IssueFields) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.issues {
		if r.issues[i].ID == id {
			r.issues[i] = models.Issue{
				ID:          id,
				Title:       fields.Title,
				Description: fields.Description,
				Status:      fields.Status,
			}
			out := r.issues[i]
			return &out, nil
		}
	}
	return nil, secondary.ErrIssueNotFound
}

// Patch shallow-merges the provided fields onto the existing record.
func (r *IssueRepository) Patch(_ context.Context, id string, patch secondary.IssuePatch) (*models.Issue, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.issues {
		if r.issues[i].ID == id {
			if patch.Title != nil {
				r.issues[i].Title = *patch.Title
			}
			if patch.Description != nil {
				r.issues[i].Description = *patch.Description
			}
			if patch.Status != nil {
				r.issues[i].Status = *patch.Status
			}
			out := r.issues[i]
			return &out, nil
		}
	}
	return nil, secondary.ErrIssueNotFound
}

// Delete removes the record at id. The id counter is untouched, so the id
// is never reissued.
func (r *IssueRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.issues {
		if r.issues[i].ID == id {
			r.issues = append(r.issues[:i], r.issues[i+1:]...)
			return nil
		}
	}
	return secondary.ErrIssueNotFound
}

// Exists reports whether a record with the given id is present.
func (r *IssueRepository) Exists(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.issues {
		if r.issues[i].ID == id {
			return true, nil
		}
	}
	return false, nil
}
