package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alkime/procflow/internal/content"
	"github.com/alkime/procflow/internal/mermaid"
	"github.com/alkime/procflow/internal/render"
	"github.com/gin-gonic/gin"
)

const (
	msgBlankAsIs   = "As-Is solution cannot be blank"
	msgGenerateErr = "There was an error processing your request. Please try again."
)

type repairRequest struct {
	Document string `json:"document"`
}

type diagramResponse struct {
	Document string `json:"document"`
	Diagram  string `json:"diagram"`
}

type exportRequest struct {
	Diagram string `json:"diagram"`
	Format  string `json:"format"`
}

func newDiagramResponse(res mermaid.Result) diagramResponse {
	return diagramResponse{
		Document: res.Document,
		Diagram:  res.Diagram,
	}
}

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

// handleRepair repairs the diagrams in an arbitrary document.
func (s *Server) handleRepair(c *gin.Context) {
	var req repairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	c.JSON(http.StatusOK, newDiagramResponse(mermaid.Process(req.Document)))
}

// handleGenerate asks the model for a diagram and returns it repaired.
func (s *Server) handleGenerate(c *gin.Context) {
	if s.deps.Flow == nil {
		abortWithError(c, http.StatusServiceUnavailable, "diagram generation is not configured")
		return
	}

	var req content.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.deps.Flow.Run(c.Request.Context(), req)
	switch {
	case errors.Is(err, content.ErrBlankAsIs):
		abortWithError(c, http.StatusBadRequest, msgBlankAsIs)
		return
	case err != nil:
		s.logger.Error("Diagram generation failed", "error", err, "request_id", c.GetString(requestIDKey))
		abortWithError(c, http.StatusBadGateway, msgGenerateErr)
		return
	}

	c.JSON(http.StatusOK, newDiagramResponse(res))
}

// handleExport renders a diagram to PNG or PDF.
func (s *Server) handleExport(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	format, err := render.ParseFormat(req.Format)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if s.deps.Renderer == nil {
		abortWithError(c, http.StatusServiceUnavailable, "export is not configured")
		return
	}

	data, err := s.deps.Renderer.Render(c.Request.Context(), req.Diagram, format)
	switch {
	case errors.Is(err, render.ErrEmptyDiagram):
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.logger.Error("Diagram export failed", "error", err, "format", format, "request_id", c.GetString(requestIDKey))
		abortWithError(c, http.StatusInternalServerError, "export failed")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="process-flow.%s"`, format.Ext()))
	c.Data(http.StatusOK, format.ContentType(), data)
}
