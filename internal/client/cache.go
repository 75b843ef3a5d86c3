package client

import (
	"context"
	"errors"
	"sync"

	"github.com/example/kanban/internal/models"
)

// ErrMutationInFlight is returned when a mutating call is issued while
// another operation is still in flight. Mutations are never queued; the
// caller must re-invoke once the in-flight operation settles.
var ErrMutationInFlight = errors.New("another operation is in flight")

// Cache mirrors the server's full record set. Every mutation re-derives the
// cached state with a wholesale re-fetch instead of patching locally; the
// extra round trip buys out any local/server divergence.
//
// One in-flight gate guards the whole instance: concurrent mutations are
// rejected, concurrent refreshes are silently skipped.
type Cache struct {
	api *Client

	mu       sync.Mutex
	issues   []models.Issue
	inFlight bool
}

// NewCache creates an empty cache over the given API client.
func NewCache(api *Client) *Cache {
	return &Cache{api: api}
}

// Refresh fetches the full list and replaces the cached collection. When
// another operation is in flight the call is a no-op: no second request is
// made and no error is returned. Failures propagate so presentation layers
// can react; the gate is cleared on every exit path.
func (c *Cache) Refresh(ctx context.Context) error {
	if !c.tryAcquire() {
		return nil
	}
	defer c.release()

	return c.doRefresh(ctx)
}

// CreateIssue posts a new issue, re-syncs the cache, and returns the created
// record. On any failure the cache is left untouched.
func (c *Cache) CreateIssue(ctx context.Context, fields IssueFields) (*models.Issue, error) {
	if !c.tryAcquire() {
		return nil, ErrMutationInFlight
	}
	defer c.release()

	issue, err := c.api.CreateIssue(ctx, fields)
	if err != nil {
		return nil, err
	}
	if err := c.doRefresh(ctx); err != nil {
		return nil, err
	}
	return issue, nil
}

// ReplaceIssue fully replaces the issue at id and re-syncs the cache.
func (c *Cache) ReplaceIssue(ctx context.Context, id string, fields IssueFields) (*models.Issue, error) {
	if !c.tryAcquire() {
		return nil, ErrMutationInFlight
	}
	defer c.release()

	issue, err := c.api.ReplaceIssue(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if err := c.doRefresh(ctx); err != nil {
		return nil, err
	}
	return issue, nil
}

// PatchIssue applies a partial update and re-syncs the cache.
func (c *Cache) PatchIssue(ctx context.Context, id string, patch IssuePatch) (*models.Issue, error) {
	if !c.tryAcquire() {
		return nil, ErrMutationInFlight
	}
	defer c.release()

	issue, err := c.api.PatchIssue(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if err := c.doRefresh(ctx); err != nil {
		return nil, err
	}
	return issue, nil
}

// DeleteIssue removes an issue and re-syncs the cache.
func (c *Cache) DeleteIssue(ctx context.Context, id string) error {
	if !c.tryAcquire() {
		return ErrMutationInFlight
	}
	defer c.release()

	if err := c.api.DeleteIssue(ctx, id); err != nil {
		return err
	}
	return c.doRefresh(ctx)
}

// SetIssues overwrites the cached collection directly, with no network
// call. Used only to seed initial state from a preloaded source.
func (c *Cache) SetIssues(issues []models.Issue) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.issues = make([]models.Issue, len(issues))
	copy(c.issues, issues)
}

// Issues returns a snapshot copy of the cached collection.
func (c *Cache) Issues() []models.Issue {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Issue, len(c.issues))
	copy(out, c.issues)
	return out
}

// IssueByID looks up a cached issue by id.
func (c *Cache) IssueByID(id string) (models.Issue, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, issue := range c.issues {
		if issue.ID == id {
			return issue, true
		}
	}
	return models.Issue{}, false
}

// View projects the cache onto a single issue. ok is false when the id is
// not currently cached, letting callers lookup-and-early-exit before
// constructing detail contexts.
func (c *Cache) View(id string) (*IssueView, bool) {
	if _, ok := c.IssueByID(id); !ok {
		return nil, false
	}
	return &IssueView{cache: c, id: id}, true
}

// doRefresh performs the fetch-and-swap without touching the gate. Called
// under an already-held gate, either by Refresh or at the tail of a
// successful mutation.
func (c *Cache) doRefresh(ctx context.Context) error {
	issues, err := c.api.ListIssues(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.issues = issues
	c.mu.Unlock()
	return nil
}

func (c *Cache) tryAcquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inFlight {
		return false
	}
	c.inFlight = true
	return true
}

func (c *Cache) release() {
	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()
}
