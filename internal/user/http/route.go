package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the login and profile endpoints.
// loginLimiter runs before the login handler only.
func RegisterRoutes(g *gin.RouterGroup, h *UserHandler, authMiddleware, loginLimiter gin.HandlerFunc) {
	g.POST("/auth/login", loginLimiter, h.Login)
	g.GET("/me", authMiddleware, h.Me)
}
