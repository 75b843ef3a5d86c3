package httpapi

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static/index.html
var staticFS embed.FS

// handleBoardPage serves the embedded board page. Presentation only; all
// state flows through the issue API.
func (s *Server) handleBoardPage(c *gin.Context) {
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		c.String(http.StatusInternalServerError, "board page unavailable")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
