package memory_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/example/kanban/internal/adapters/memory"
	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/secondary"
	"github.com/example/kanban/internal/seed"
)

// seededRepo returns a repository loaded with the example dataset.
func seededRepo(t *testing.T) *memory.IssueRepository {
	t.Helper()
	repo := memory.NewIssueRepository()
	repo.Seed(seed.Issues(), seed.NextID)
	return repo
}

func strPtr(s string) *string { return &s }

func TestIssueRepository_Create_AssignsMonotonicIDs(t *testing.T) {
	repo := memory.NewIssueRepository()
	ctx := context.Background()

	for want := 1; want <= 5; want++ {
		issue, err := repo.Create(ctx, secondary.IssueFields{Title: "t", Description: "d", Status: models.StatusTodo})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if issue.ID != strconv.Itoa(want) {
			t.Errorf("expected id %q, got %q", strconv.Itoa(want), issue.ID)
		}
	}
}

func TestIssueRepository_Create_NeverReusesIDsAfterDelete(t *testing.T) {
	repo := memory.NewIssueRepository()
	ctx := context.Background()

	first, err := repo.Create(ctx, secondary.IssueFields{Title: "a", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := repo.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	second, err := repo.Create(ctx, secondary.IssueFields{Title: "b", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if second.ID == first.ID {
		t.Errorf("id %q was reissued after delete", first.ID)
	}
	if second.ID != "2" {
		t.Errorf("expected id \"2\", got %q", second.ID)
	}
}

func TestIssueRepository_List_InsertionOrderAndDefensiveCopy(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	issues, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(issues) != 8 {
		t.Fatalf("expected 8 issues, got %d", len(issues))
	}
	for i, issue := range issues {
		if issue.ID != strconv.Itoa(i+1) {
			t.Errorf("position %d: expected id %q, got %q", i, strconv.Itoa(i+1), issue.ID)
		}
	}

	// Mutating the returned slice must not leak into the store.
	issues[0].Title = "tampered"
	again, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if again[0].Title == "tampered" {
		t.Error("List returned a live reference to the canonical collection")
	}
}

func TestIssueRepository_CreateGetRoundTrip(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, secondary.IssueFields{Title: "Test", Description: "D", Status: models.StatusTodo})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID != "9" {
		t.Errorf("expected id \"9\" after seeding, got %q", created.ID)
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if *got != *created {
		t.Errorf("round trip mismatch: created %+v, got %+v", created, got)
	}
}

func TestIssueRepository_Replace_PreservesID(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	replaced, err := repo.Replace(ctx, "3", secondary.IssueFields{Title: "New", Description: "New desc", Status: models.StatusClosed})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if replaced.ID != "3" {
		t.Errorf("expected id \"3\", got %q", replaced.ID)
	}
	if replaced.Title != "New" || replaced.Status != models.StatusClosed {
		t.Errorf("replace did not apply fields: %+v", replaced)
	}

	issues, _ := repo.List(ctx)
	if len(issues) != 8 {
		t.Errorf("replace changed collection size: %d", len(issues))
	}
}

func TestIssueRepository_Patch_OnlyTouchesProvidedFields(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	before, err := repo.GetByID(ctx, "1")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}

	patched, err := repo.Patch(ctx, "1", secondary.IssuePatch{Status: strPtr(models.StatusDone)})
	if err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if patched.Status != models.StatusDone {
		t.Errorf("expected status %q, got %q", models.StatusDone, patched.Status)
	}
	if patched.Title != before.Title || patched.Description != before.Description {
		t.Errorf("patch touched unrelated fields: before %+v, after %+v", before, patched)
	}
}

func TestIssueRepository_Delete_RemovesExactlyOneRecord(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	if err := repo.Delete(ctx, "4"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	issues, _ := repo.List(ctx)
	if len(issues) != 7 {
		t.Fatalf("expected 7 issues after delete, got %d", len(issues))
	}
	for _, issue := range issues {
		if issue.ID == "4" {
			t.Error("deleted issue still present")
		}
	}

	exists, err := repo.Exists(ctx, "4")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("Exists reported a deleted id as present")
	}
}

func TestIssueRepository_MutationsOnUnknownID_AreNoOps(t *testing.T) {
	repo := seededRepo(t)
	ctx := context.Background()

	if _, err := repo.Replace(ctx, "999", secondary.IssueFields{Title: "x"}); !errors.Is(err, secondary.ErrIssueNotFound) {
		t.Errorf("Replace: expected ErrIssueNotFound, got %v", err)
	}
	if _, err := repo.Patch(ctx, "999", secondary.IssuePatch{Title: strPtr("x")}); !errors.Is(err, secondary.ErrIssueNotFound) {
		t.Errorf("Patch: expected ErrIssueNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "999"); !errors.Is(err, secondary.ErrIssueNotFound) {
		t.Errorf("Delete: expected ErrIssueNotFound, got %v", err)
	}

	issues, _ := repo.List(ctx)
	if len(issues) != 8 {
		t.Errorf("failed mutations changed the collection: %d records", len(issues))
	}
}

func TestIssueRepository_GetByID_UnknownID(t *testing.T) {
	repo := memory.NewIssueRepository()

	_, err := repo.GetByID(context.Background(), "1")
	if !errors.Is(err, secondary.ErrIssueNotFound) {
		t.Errorf("expected ErrIssueNotFound, got %v", err)
	}
}
