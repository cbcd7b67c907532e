package routes

import (
	"net/http"

	"weddinghub_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// Setup mounts the API surface under /api.
func Setup(router *gin.Engine, h *handlers.AppHandlers) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	h.RegisterAll(api)
}
