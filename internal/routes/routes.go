package routes

import (
	"net/http"

	"jobportal_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// AppHandlers groups everything that registers routes.
type AppHandlers struct {
	Auth *handlers.AuthHandler
}

// RegisterRoutes wires all endpoints onto the engine.
func RegisterRoutes(r *gin.Engine, h *AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.Auth.RegisterRoutes(r)
}
