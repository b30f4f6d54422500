package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	slots := g.Group("/slots")
	slots.Use(authMiddleware)
	{
		slots.GET("", h.ListSlots)
	}

	bookings := g.Group("/bookings")
	bookings.Use(authMiddleware)
	{
		bookings.GET("", h.ListMine)
		bookings.POST("", h.Create)
		bookings.DELETE("/:id", h.Delete)
	}
}
