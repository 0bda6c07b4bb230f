package api

import (
	"net/http"

	"ucode/ucode_go_query_builder_service/models"
	"ucode/ucode_go_query_builder_service/pkg/helper"
	span "ucode/ucode_go_query_builder_service/pkg/jaeger"
	"ucode/ucode_go_query_builder_service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

func (h *Handler) CreateSavedQuery(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.CreateSavedQuery", nil)
	defer httpSpan.Finish()

	var req models.SavedQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := validateQuery(&req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.log.Info("---CreateSavedQuery--->>>", logger.String("name", req.Name))

	id, err := h.strg.SavedQuery().Create(ctx, &req)
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "CreateSavedQuery")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *Handler) GetSavedQuery(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.GetSavedQuery", c.Param("id"))
	defer httpSpan.Finish()

	resp, err := h.strg.SavedQuery().GetByID(ctx, c.Param("id"))
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "GetSavedQuery")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetAllSavedQueries(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.GetAllSavedQueries", nil)
	defer httpSpan.Finish()

	req := models.GetAllSavedQueriesRequest{
		Search: c.Query("search"),
		Limit:  cast.ToUint64(c.Query("limit")),
		Offset: cast.ToUint64(c.Query("offset")),
	}
	if ids, ok := c.GetQueryArray("ids"); ok {
		req.Ids = ids
	}

	resp, err := h.strg.SavedQuery().GetAll(ctx, &req)
	if err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "GetAllSavedQueries")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateSavedQuery(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.UpdateSavedQuery", c.Param("id"))
	defer httpSpan.Finish()

	var req models.SavedQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Id = c.Param("id")

	if err := validateQuery(&req.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.strg.SavedQuery().Update(ctx, &req); err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "UpdateSavedQuery")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.Id})
}

func (h *Handler) DeleteSavedQuery(c *gin.Context) {
	httpSpan, ctx := span.StartSpanFromContext(c.Request.Context(), "api.DeleteSavedQuery", c.Param("id"))
	defer httpSpan.Finish()

	if err := h.strg.SavedQuery().Delete(ctx, c.Param("id")); err != nil {
		status := helper.StatusFromDatabaseError(err, h.log, "DeleteSavedQuery")
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
}
