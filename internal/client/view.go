package client

import (
	"context"

	"github.com/example/kanban/internal/models"
)

// IssueView binds the cache's operations to one issue id, for contexts that
// operate on a single known record (a detail page). It holds no state of
// its own: every read and write goes through the cache, so a view never
// diverges from the list it was derived from.
type IssueView struct {
	cache *Cache
	id    string
}

// ID returns the bound issue id.
func (v *IssueView) ID() string {
	return v.id
}

// Issue returns the current cached record for the bound id. ok is false if
// the record has since been deleted.
func (v *IssueView) Issue() (models.Issue, bool) {
	return v.cache.IssueByID(v.id)
}

// Patch applies a partial update to the bound issue.
func (v *IssueView) Patch(ctx context.Context, patch IssuePatch) (*models.Issue, error) {
	return v.cache.PatchIssue(ctx, v.id, patch)
}

// Delete removes the bound issue.
func (v *IssueView) Delete(ctx context.Context) error {
	return v.cache.DeleteIssue(ctx, v.id)
}
