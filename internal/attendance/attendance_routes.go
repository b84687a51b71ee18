package attendance

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	attendance := r.Group("/attendance")
	attendance.Use(middleware.AuthMiddleware())
	{
		attendance.POST("/punch-in",
			middleware.RBACAuthorize(rbacService, "attendance", "punch"),
			h.PunchIn,
		)
		attendance.POST("/punch-out",
			middleware.RBACAuthorize(rbacService, "attendance", "punch"),
			h.PunchOut,
		)
		attendance.GET("/today",
			middleware.RBACAuthorize(rbacService, "attendance", "read_self"),
			h.Today,
		)
		attendance.GET("/me",
			middleware.RBACAuthorize(rbacService, "attendance", "read_self"),
			h.ListMine,
		)
	}
}
