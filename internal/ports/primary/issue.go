// Package primary defines the primary ports (driving interfaces) for the
// kanban application and the request/response types that cross them.
package primary

import (
	"context"

	"github.com/example/kanban/internal/models"
)

// IssueService defines the primary port for issue operations. The HTTP API,
// CLI adapters, and tests all drive the application through this interface.
type IssueService interface {
	// ListIssues returns every issue in insertion order.
	ListIssues(ctx context.Context) ([]models.Issue, error)

	// GetIssue retrieves a single issue by id.
	GetIssue(ctx context.Context, id string) (*models.Issue, error)

	// CreateIssue validates the request and creates a new issue. The store
	// assigns the id.
	CreateIssue(ctx context.Context, req CreateIssueRequest) (*models.Issue, error)

	// ReplaceIssue fully replaces the issue at id, preserving the id.
	ReplaceIssue(ctx context.Context, id string, req ReplaceIssueRequest) (*models.Issue, error)

	// PatchIssue applies a shallow partial update to the issue at id.
	PatchIssue(ctx context.Context, id string, req PatchIssueRequest) (*models.Issue, error)

	// DeleteIssue removes the issue at id.
	DeleteIssue(ctx context.Context, id string) error
}

// CreateIssueRequest contains the fields for a new issue. Pointer fields let
// the transport distinguish a missing key from an empty string, so the
// required-key check of the API surface lives in one place.
type CreateIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// ReplaceIssueRequest carries the full field set for a replace. Same shape
// and validation rules as create.
type ReplaceIssueRequest = CreateIssueRequest

// PatchIssueRequest is a partial update; nil fields are left unchanged.
// An "id" key in the request body is ignored for identity purposes.
type PatchIssueRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}
