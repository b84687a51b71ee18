package dashboard

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(middleware.AuthMiddleware())
	{
		dashboard.GET("/stats",
			middleware.RBACAuthorize(rbacService, "dashboard", "read"),
			h.AdminStats,
		)
	}
}
