// Package cli contains thin adapters that translate terminal operations to
// client cache calls and render the results. Adapters are stateless
// translators; the output writer is injected for testing.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/kanban/internal/client"
	"github.com/example/kanban/internal/models"
)

// IssueAdapter renders issue operations for the terminal. It drives the
// client cache, so every mutation it performs leaves the cache synced with
// the server.
type IssueAdapter struct {
	cache *client.Cache
	out   io.Writer
}

// NewIssueAdapter creates a new IssueAdapter with the given cache.
func NewIssueAdapter(cache *client.Cache, out io.Writer) *IssueAdapter {
	return &IssueAdapter{cache: cache, out: out}
}

// List refreshes the cache and prints every issue, optionally filtered to
// one status.
func (a *IssueAdapter) List(ctx context.Context, status string) ([]models.Issue, error) {
	if err := a.cache.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	issues := a.cache.Issues()
	if status != "" {
		filtered := issues[:0]
		for _, issue := range issues {
			if issue.Status == status {
				filtered = append(filtered, issue)
			}
		}
		issues = filtered
	}

	if len(issues) == 0 {
		fmt.Fprintln(a.out, "No issues found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Create your first issue:")
		fmt.Fprintln(a.out, "  kanban issue create \"My first card\" --description \"...\" --status todo")
		return issues, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDESCRIPTION")
	fmt.Fprintln(w, "--\t------\t-----\t-----------")
	for _, issue := range issues {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", issue.ID, statusLabel(issue.Status), issue.Title, issue.Description)
	}
	w.Flush()
	return issues, nil
}

// Show displays one issue through a scoped view bound to its id.
func (a *IssueAdapter) Show(ctx context.Context, id string) (*client.IssueView, error) {
	if err := a.cache.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to fetch issues: %w", err)
	}

	view, ok := a.cache.View(id)
	if !ok {
		return nil, fmt.Errorf("issue %s not found", id)
	}
	issue, _ := view.Issue()

	fmt.Fprintf(a.out, "\nIssue: %s\n", issue.ID)
	fmt.Fprintf(a.out, "Title:       %s\n", issue.Title)
	fmt.Fprintf(a.out, "Status:      %s\n", statusLabel(issue.Status))
	fmt.Fprintf(a.out, "Description: %s\n", issue.Description)
	fmt.Fprintln(a.out)
	return view, nil
}

// Create posts a new issue and prints the assigned id.
func (a *IssueAdapter) Create(ctx context.Context, fields client.IssueFields) (*models.Issue, error) {
	issue, err := a.cache.CreateIssue(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Created issue %s: %s [%s]\n", issue.ID, issue.Title, issue.Status)
	return issue, nil
}

// Move patches only the status of the issue at id, the CLI counterpart of
// dragging a card to another column.
func (a *IssueAdapter) Move(ctx context.Context, id, status string) (*models.Issue, error) {
	issue, err := a.cache.PatchIssue(ctx, id, client.IssuePatch{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to move issue: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Moved issue %s to %s\n", issue.ID, statusLabel(issue.Status))
	return issue, nil
}

// Update fully replaces the issue at id.
func (a *IssueAdapter) Update(ctx context.Context, id string, fields client.IssueFields) (*models.Issue, error) {
	issue, err := a.cache.ReplaceIssue(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to update issue: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Updated issue %s\n", issue.ID)
	return issue, nil
}

// Patch applies a partial update to the issue at id.
func (a *IssueAdapter) Patch(ctx context.Context, id string, patch client.IssuePatch) (*models.Issue, error) {
	issue, err := a.cache.PatchIssue(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to patch issue: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Patched issue %s\n", issue.ID)
	return issue, nil
}

// Delete removes the issue at id.
func (a *IssueAdapter) Delete(ctx context.Context, id string) error {
	if err := a.cache.DeleteIssue(ctx, id); err != nil {
		return fmt.Errorf("failed to delete issue: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Deleted issue %s\n", id)
	return nil
}

// statusLabel colors a known status and marks unknown values so they stand
// out instead of disappearing.
func statusLabel(status string) string {
	switch status {
	case models.StatusTodo:
		return color.New(color.FgHiBlue).Sprint(status)
	case models.StatusDoing:
		return color.New(color.FgYellow).Sprint(status)
	case models.StatusDone:
		return color.New(color.FgHiGreen).Sprint(status)
	case models.StatusClosed:
		return color.New(color.FgHiBlack).Sprint(status)
	}
	return color.New(color.FgHiMagenta).Sprintf("%s (unknown)", status)
}
