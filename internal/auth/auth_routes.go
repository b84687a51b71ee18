package auth

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, h *Handler) {
	routes := rg.Group("/auth")
	{
		routes.POST("/login", middleware.RateLimitByIP(5, 10), h.Login)

		protected := routes.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/change-password", h.ChangePassword)
			protected.GET("/me", h.Me)
		}
	}
}
