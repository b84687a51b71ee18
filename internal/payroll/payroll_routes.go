package payroll

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, rdb *redis.Client) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.POST("/process",
			middleware.RBACAuthorize(rbacService, "payroll", "process"),
			middleware.Idempotency(rdb),
			h.ProcessMonth,
		)
		payroll.GET("/payslips",
			middleware.RBACAuthorize(rbacService, "payroll", "read_self"),
			h.GetMyPayslips,
		)
	}
}
