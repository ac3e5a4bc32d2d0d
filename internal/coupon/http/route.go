package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers coupon-related routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/coupons")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("", h.ListMine) // List the caller's usable coupons
	}
}
