// Package client talks to the issue API and maintains the client-side state
// layers: a low-level Client per endpoint, a Cache mirroring the full record
// set, and an IssueView projecting the cache onto a single bound id.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/example/kanban/internal/models"
)

// IssueFields carries the full field set for create and replace calls.
type IssueFields struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// IssuePatch is a partial update; nil fields are omitted from the request
// body so the server leaves them untouched.
type IssuePatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// APIError is a non-success response from the issue API. Message carries
// the server's error envelope when the body was parseable, otherwise a
// generic HTTP-status-derived message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client is a thin HTTP client for the issue API. It holds no state beyond
// the base URL; the Cache layers state on top.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for the API at baseURL (e.g. "http://localhost:8080").
// httpClient may be nil, in which case http.DefaultClient is used.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// ListIssues fetches the full record set.
func (c *Client) ListIssues(ctx context.Context) ([]models.Issue, error) {
	var issues []models.Issue
	if err := c.do(ctx, http.MethodGet, "/api/issues", nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// CreateIssue posts a new issue and returns the created record.
func (c *Client) CreateIssue(ctx context.Context, fields IssueFields) (*models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodPost, "/api/issues", fields, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// ReplaceIssue fully replaces the issue at id.
func (c *Client) ReplaceIssue(ctx context.Context, id string, fields IssueFields) (*models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodPut, "/api/issues/"+id, fields, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// PatchIssue applies a partial update to the issue at id.
func (c *Client) PatchIssue(ctx context.Context, id string, patch IssuePatch) (*models.Issue, error) {
	var issue models.Issue
	if err := c.do(ctx, http.MethodPatch, "/api/issues/"+id, patch, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// DeleteIssue removes the issue at id.
func (c *Client) DeleteIssue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/issues/"+id, nil, nil)
}

// do performs one request. Non-2xx responses become an *APIError carrying
// the server's error envelope when present.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var envelope struct {
			Error string `json:"error"`
		}
		msg := fmt.Sprintf("request failed with status %d", res.StatusCode)
		if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			msg = envelope.Error
		}
		return &APIError{StatusCode: res.StatusCode, Message: msg}
	}

	if out != nil {
		if err := json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
