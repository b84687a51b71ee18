package leave

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	leaves := r.Group("/leaves")
	leaves.Use(middleware.AuthMiddleware())
	{
		leaves.POST("",
			middleware.RBACAuthorize(rbacService, "leave", "apply"),
			h.Apply,
		)
		leaves.GET("/me",
			middleware.RBACAuthorize(rbacService, "leave", "read_self"),
			h.ListMine,
		)
		leaves.GET("/pending",
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			h.ListPending,
		)
		leaves.PATCH("/:id/status",
			middleware.RBACAuthorize(rbacService, "leave", "approve"),
			h.UpdateStatus,
		)
	}
}
