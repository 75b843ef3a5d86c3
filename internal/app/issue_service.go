// Package app implements the primary ports. Services validate requests,
// delegate to repositories, and translate outcomes for the adapters.
package app

import (
	"context"
	"fmt"

	"github.com/example/kanban/internal/models"
	"github.com/example/kanban/internal/ports/primary"
	"github.com/example/kanban/internal/ports/secondary"
)

// Compile-time check that the service satisfies the primary port.
var _ primary.IssueService = (*IssueServiceImpl)(nil)

// IssueServiceImpl implements the IssueService interface.
type IssueServiceImpl struct {
	issueRepo secondary.IssueRepository
}

// NewIssueService creates a new IssueService with injected dependencies.
func NewIssueService(issueRepo secondary.IssueRepository) *IssueServiceImpl {
	return &IssueServiceImpl{issueRepo: issueRepo}
}

// ListIssues returns every issue in insertion order.
func (s *IssueServiceImpl) ListIssues(ctx context.Context) ([]models.Issue, error) {
	issues, err := s.issueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}
	return issues, nil
}

// GetIssue retrieves a single issue by id.
func (s *IssueServiceImpl) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	issue, err := s.issueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// CreateIssue validates the request shape and creates a new issue. The
// repository assigns the id. Status values outside the known set are
// accepted; presentation layers render them with a fallback label.
func (s *IssueServiceImpl) CreateIssue(ctx context.Context, req primary.CreateIssueRequest) (*models.Issue, error) {
	fields, err := requireFields(req)
	if err != nil {
		return nil, err
	}

	issue, err := s.issueRepo.Create(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to create issue: %w", err)
	}
	return issue, nil
}

// ReplaceIssue fully replaces the issue at id, preserving the id.
func (s *IssueServiceImpl) ReplaceIssue(ctx context.Context, id string, req primary.ReplaceIssueRequest) (*models.Issue, error) {
	fields, err := requireFields(req)
	if err != nil {
		return nil, err
	}

	issue, err := s.issueRepo.Replace(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// PatchIssue applies a shallow partial update to the issue at id. Fields
// absent from the request are left untouched; an "id" key in the body never
// changes identity.
func (s *IssueServiceImpl) PatchIssue(ctx context.Context, id string, req primary.PatchIssueRequest) (*models.Issue, error) {
	issue, err := s.issueRepo.Patch(ctx, id, secondary.IssuePatch{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		return nil, err
	}
	return issue, nil
}

// DeleteIssue removes the issue at id.
func (s *IssueServiceImpl) DeleteIssue(ctx context.Context, id string) error {
	return s.issueRepo.Delete(ctx, id)
}

// requireFields enforces the create/replace shape: title, description, and
// status keys must all be present. Values are strings by construction (the
// transport rejects non-string values while decoding).
func requireFields(req primary.CreateIssueRequest) (secondary.IssueFields, error) {
	var missing []string
	if req.Title == nil {
		missing = append(missing, "title")
	}
	if req.Description == nil {
		missing = append(missing, "description")
	}
	if req.Status == nil {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return secondary.IssueFields{}, fmt.Errorf("missing required fields: %v", missing)
	}

	return secondary.IssueFields{
		Title:       *req.Title,
		Description: *req.Description,
		Status:      *req.Status,
	}, nil
}
