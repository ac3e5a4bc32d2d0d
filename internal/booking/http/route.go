package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking and court availability routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.POST("/quote", h.Quote)
		group.POST("/:id/cancel", h.Cancel)
	}

	availability := g.Group("/courts/:id/availability")
	availability.Use(authMiddleware)
	{
		availability.GET("", h.Availability)
		availability.GET("/ends", h.EndCandidates)
		availability.GET("/check", h.Check)
	}
}
