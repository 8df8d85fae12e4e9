package app

import (
	"database/sql"

	"github.com/HikaruIzuno/dailyreport-system/internal/auth"
	"github.com/HikaruIzuno/dailyreport-system/internal/employee"
	"github.com/HikaruIzuno/dailyreport-system/internal/messaging/kafka"
	"github.com/HikaruIzuno/dailyreport-system/internal/report"

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
	employeeRepo := employee.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	authService := auth.NewService(employeeRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, reportRepo, outboxRepo, rdb, logger)
	reportService := report.NewService(db, reportRepo, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	reportHandler := report.NewHandler(reportService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		report.RegisterRoutes(api, reportHandler, logger)
	}

	return nil
}
