package app

import (
	"database/sql"
	"os"
	"time"

	"github.com/BibekanandaBariki/technnext-hrms/internal/attendance"
	"github.com/BibekanandaBariki/technnext-hrms/internal/auth"
	"github.com/BibekanandaBariki/technnext-hrms/internal/dashboard"
	"github.com/BibekanandaBariki/technnext-hrms/internal/department"
	"github.com/BibekanandaBariki/technnext-hrms/internal/designation"
	"github.com/BibekanandaBariki/technnext-hrms/internal/document"
	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	"github.com/BibekanandaBariki/technnext-hrms/internal/leave"
	"github.com/BibekanandaBariki/technnext-hrms/internal/messaging/kafka"
	"github.com/BibekanandaBariki/technnext-hrms/internal/middleware"
	"github.com/BibekanandaBariki/technnext-hrms/internal/payroll"
	"github.com/BibekanandaBariki/technnext-hrms/internal/rbac"
	"github.com/BibekanandaBariki/technnext-hrms/internal/salarystructure"
	"github.com/BibekanandaBariki/technnext-hrms/internal/shared/counter"
	"github.com/BibekanandaBariki/technnext-hrms/internal/storage"
	"github.com/BibekanandaBariki/technnext-hrms/internal/tax"
	"github.com/BibekanandaBariki/technnext-hrms/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	designationRepo := designation.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	documentRepo := document.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	salaryStructureRepo := salarystructure.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	taxRepo := tax.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService(rbac.DefaultPolicies())
	if err != nil {
		return err
	}

	// --- Collaborators ---
	presigner := storage.NewHMACPresigner(
		os.Getenv("STORAGE_BASE_URL"),
		os.Getenv("STORAGE_SIGNING_SECRET"),
	)

	// --- Services ---
	authService := auth.NewService(userRepo, employeeRepo, logger)
	departmentService := department.NewService(db, departmentRepo, logger)
	designationService := designation.NewService(db, designationRepo, logger)
	employeeService := employee.NewService(db, employeeRepo, userRepo, counterRepo, outboxRepo, rdb, logger)
	documentService := document.NewService(db, documentRepo, employeeRepo, presigner, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, logger)
	leaveService := leave.NewService(db, leaveRepo, employeeRepo, logger)
	salaryStructureService := salarystructure.NewService(db, salaryStructureRepo, employeeRepo, logger)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, outboxRepo, logger)
	taxService := tax.NewService(db, taxRepo, employeeRepo, logger)
	dashboardService := dashboard.NewService(dashboardRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	designationHandler := designation.NewHandler(designationService)
	employeeHandler := employee.NewHandler(employeeService, logger)
	documentHandler := document.NewHandler(documentService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	salaryStructureHandler := salarystructure.NewHandler(salaryStructureService)
	payrollHandler := payroll.NewHandler(payrollService, rdb, logger)
	taxHandler := tax.NewHandler(taxService)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	// --- Global middleware & routes ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		designation.RegisterRoutes(api, designationHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		document.RegisterRoutes(api, documentHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		salarystructure.RegisterRoutes(api, salaryStructureHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
		tax.RegisterRoutes(api, taxHandler, rbacService)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	return nil
}
