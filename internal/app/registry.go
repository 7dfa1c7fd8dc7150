package app

import (
	"database/sql"
	"net/http"

	"go-ems/internal/employee"
	"go-ems/internal/health"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	sqlDB *sql.DB,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	healthHandler := health.NewHandler(sqlDB, logger)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		employee.RegisterRoutes(api, employeeHandler, logger)
		api.GET("/health", healthHandler.Check)
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Employee Management System API",
			"version": "1.0.0",
		})
	})

	return nil
}
