package api

import (
	"net/http"

	"ucode/ucode_go_query_builder_service/models"
	"ucode/ucode_go_query_builder_service/pkg/helper"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	"ucode/ucode_go_query_builder_service/sqlgen"

	"github.com/gin-gonic/gin"
)

// Preview renders a query model to SQL without running it. An empty model
// yields an empty statement; the client shows nothing to execute.
func (h *Handler) Preview(c *gin.Context) {
	httpSpan, _ := span.StartSpanFromContext(c.Request.Context(), "api.Preview", nil)
	defer httpSpan.Finish()

	var query models.Query
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stmt, err := sqlgen.Generate(&query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stmt)
}

func (h *Handler) Execute(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.Execute", nil)
	defer httpSpan.Finish()

	var query models.Query
	if err := c.ShouldBindJSON(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stmt, err := sqlgen.Generate(&query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if stmt.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to execute"})
		return
	}

	h.log.Info("---Execute--->>>", logger.String("sql", stmt.SQL))

	result, err := h.strg.Runner().Run(ctx, stmt)
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "Execute")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type exportRequest struct {
	Name  string       `json:"name"`
	Query models.Query `json:"query"`
}

func (h *Handler) Export(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.Export", nil)
	defer httpSpan.Finish()

	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateQuery(&req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stmt, err := sqlgen.Generate(&req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if stmt.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to export"})
		return
	}

	h.log.Info("---Export--->>>", logger.String("sql", stmt.SQL))

	result, err := h.strg.Runner().Export(ctx, stmt, req.Name)
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "Export")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
