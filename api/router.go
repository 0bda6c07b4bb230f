// Package api wires the console's HTTP surface: schema catalog listing,
// saved query CRUD, and preview/execute/export of query models.
package api

import (
	"ucode/ucode_go_query_builder_service/config"
	"ucode/ucode_go_query_builder_service/pkg/logger"
	"ucode/ucode_go_query_builder_service/storage"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	cfg  config.Config
	log  logger.LoggerI
	strg storage.StorageI
}

func NewHandler(cfg config.Config, log logger.LoggerI, strg storage.StorageI) *Handler {
	return &Handler{
		cfg:  cfg,
		log:  log,
		strg: strg,
	}
}

func SetUpRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	{
		v1.GET("/tables", h.ListTables)

		v1.POST("/queries", h.CreateSavedQuery)
		v1.GET("/queries", h.GetAllSavedQueries)
		v1.GET("/queries/:id", h.GetSavedQuery)
		v1.PUT("/queries/:id", h.UpdateSavedQuery)
		v1.DELETE("/queries/:id", h.DeleteSavedQuery)

		v1.POST("/queries/preview", h.Preview)
		v1.POST("/queries/execute", h.Execute)
		v1.POST("/queries/export", h.Export)
	}

	return router
}
