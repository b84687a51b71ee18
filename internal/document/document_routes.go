package document

import (
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service) {
	documents := r.Group("/documents")
	documents.Use(middleware.AuthMiddleware())
	{
		documents.POST("/presign",
			middleware.RBACAuthorize(rbacService, "document", "upload"),
			h.PresignUpload,
		)
		documents.POST("",
			middleware.RBACAuthorize(rbacService, "document", "upload"),
			h.Upload,
		)
		documents.GET("/me",
			middleware.RBACAuthorize(rbacService, "document", "read_self"),
			h.ListMine,
		)
		documents.GET("/employee/:employeeId",
			middleware.RBACAuthorize(rbacService, "document", "read"),
			h.ListByEmployee,
		)
		documents.GET("/employee/:employeeId/status",
			middleware.RBACAuthorize(rbacService, "document", "read"),
			h.VerificationStatus,
		)
		documents.POST("/:id/review",
			middleware.RBACAuthorize(rbacService, "document", "review"),
			h.Review,
		)
	}
}
