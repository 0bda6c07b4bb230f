package api

import (
	"net/http"

	"ucode/ucode_go_query_builder_service/pkg/helper"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"

	"github.com/gin-gonic/gin"
)

// ListTables exposes the schema catalog: table names, row estimates and
// columns with key flags, straight from the database on every call.
func (h *Handler) ListTables(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.ListTables", nil)
	defer httpSpan.Finish()

	resp, err := h.strg.Catalog().ListTables(ctx)
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "ListTables")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
