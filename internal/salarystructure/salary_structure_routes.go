package salarystructure

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	structures := r.Group("/payroll/salary-structure")
	structures.Use(middleware.AuthMiddleware())
	{
		structures.POST("/:employeeId",
			middleware.RBACAuthorize(rbacService, "salary_structure", "update"),
			h.Set,
		)
		structures.GET("/:employeeId",
			middleware.RBACAuthorize(rbacService, "salary_structure", "read"),
			h.Get,
		)
	}
}
