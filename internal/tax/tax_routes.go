package tax

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	declarations := r.Group("/tax/declarations")
	declarations.Use(middleware.AuthMiddleware())
	{
		declarations.POST("",
			middleware.RBACAuthorize(rbacService, "tax", "declare"),
			h.Declare,
		)
		declarations.GET("/me",
			middleware.RBACAuthorize(rbacService, "tax", "read_self"),
			h.ListMine,
		)
	}
}
