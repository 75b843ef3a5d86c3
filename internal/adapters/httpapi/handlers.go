package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/example/kanban/internal/ports/primary"
)

// All failures share one envelope and status code: 400 with {"error": msg}.
// Not-found is deliberately not distinguished from bad input; clients key
// off the message, and the uniform envelope keeps their error paths to one
// branch. See DESIGN.md for the 400-vs-404 decision.
func writeError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// decodeBody enforces the request-validation contract: a JSON content type,
// a non-empty body, and a value that decodes into dst. Unknown keys pass
// through (a patch body may carry an "id" key, which is ignored); non-string
// values for string fields fail the decode.
func decodeBody(c *gin.Context, dst any) error {
	if ct := c.ContentType(); !strings.HasPrefix(ct, "application/json") {
		return errors.New("request body must be JSON")
	}
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return errors.New("request body is empty")
	}
	if err := json.NewDecoder(c.Request.Body).Decode(dst); err != nil {
		return errors.New("request body is not a valid issue object")
	}
	return nil
}

func (s *Server) handleListIssues(c *gin.Context) {
	issues, err := s.service.ListIssues(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (s *Server) handleCreateIssue(c *gin.Context) {
	var req primary.CreateIssueRequest
	if err := decodeBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	issue, err := s.service.CreateIssue(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) handleReplaceIssue(c *gin.Context) {
	var req primary.ReplaceIssueRequest
	if err := decodeBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	issue, err := s.service.ReplaceIssue(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) handlePatchIssue(c *gin.Context) {
	var req primary.PatchIssueRequest
	if err := decodeBody(c, &req); err != nil {
		writeError(c, err)
		return
	}

	issue, err := s.service.PatchIssue(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, issue)
}

func (s *Server) handleDeleteIssue(c *gin.Context) {
	if err := s.service.DeleteIssue(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
