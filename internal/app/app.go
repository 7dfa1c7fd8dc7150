package app

import (
	"go-ems/internal/config"
	"go-ems/internal/employee"
	"go-ems/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const connectRetries = 5

// BuildApp wires infrastructure and modules onto the router. The returned
// cleanup closes the database pool; the gorm handle lives for the whole
// process, owned here rather than by a package-level singleton.
func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) (func(), error) {
	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
		cfg.DBSSLMode,
		connectRetries,
	)
	if err != nil {
		return nil, err
	}

	// Idempotent table creation; the only schema management in scope.
	if err := db.AutoMigrate(&employee.Employee{}); err != nil {
		return nil, err
	}
	logger.Info("employees table migrated")

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if err := registerModules(router, db, sqlDB, logger); err != nil {
		return nil, err
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.Error("closing database pool failed", zap.Error(err))
		}
	}
	return cleanup, nil
}
