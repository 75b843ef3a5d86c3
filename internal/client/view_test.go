package client_test

import (
	"context"
	"testing"

	"github.com/example/kanban/internal/client"
	"github.com/example/kanban/internal/models"
)

func TestCache_View_RequiresCachedRecord(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if _, ok := cache.View("999"); ok {
		t.Error("expected no view for an uncached id")
	}

	view, ok := cache.View("1")
	if !ok {
		t.Fatal("expected a view for a cached id")
	}
	if view.ID() != "1" {
		t.Errorf("expected bound id \"1\", got %q", view.ID())
	}
}

func TestIssueView_Patch_DelegatesWithBoundID(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	view, ok := cache.View("2")
	if !ok {
		t.Fatal("expected a view for issue 2")
	}
	before, _ := view.Issue()

	patched, err := view.Patch(ctx, client.IssuePatch{Status: strPtr(models.StatusDone)})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if patched.ID != "2" || patched.Status != models.StatusDone {
		t.Errorf("unexpected patched record: %+v", patched)
	}
	if patched.Title != before.Title {
		t.Errorf("patch touched the title: %+v", patched)
	}

	// The view reads through the refreshed cache.
	current, ok := view.Issue()
	if !ok {
		t.Fatal("record vanished from the cache")
	}
	if current.Status != models.StatusDone {
		t.Errorf("cache not re-synced: status %q", current.Status)
	}
}

func TestIssueView_Delete_RemovesBoundRecord(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	if err := cache.Refresh(ctx); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}
	view, ok := cache.View("7")
	if !ok {
		t.Fatal("expected a view for issue 7")
	}

	if err := view.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok := view.Issue(); ok {
		t.Error("deleted record still visible through the view")
	}
}
