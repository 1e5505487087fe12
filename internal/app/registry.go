package app

import (
	"context"
	"database/sql"
	"path/filepath"

	"github.com/KapilArunesshSS/brighttechrms/internal/auth"
	"github.com/KapilArunesshSS/brighttechrms/internal/employee"
	"github.com/KapilArunesshSS/brighttechrms/internal/manpower"
	"github.com/KapilArunesshSS/brighttechrms/internal/messaging/kafka"
	"github.com/KapilArunesshSS/brighttechrms/internal/middleware"
	"github.com/KapilArunesshSS/brighttechrms/internal/rbac"
	"github.com/KapilArunesshSS/brighttechrms/internal/rbac/infra"
	"github.com/KapilArunesshSS/brighttechrms/internal/shared/sequence"
	"github.com/KapilArunesshSS/brighttechrms/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	ctx context.Context,
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	blobs storage.BlobStore,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	manpowerRepo := manpower.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	sequenceRepo := sequence.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(
		filepath.Join("internal", "rbac", "infra", "model.conf"),
		filepath.Join("internal", "rbac", "infra", "policy.csv"),
	)
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, sequenceRepo, blobs, outboxRepo, rdb)
	manpowerService := manpower.NewService(manpowerRepo)

	// The reference id counter must be ahead of every issued id
	// before the first create can run.
	if err := employeeService.InitRefSequence(ctx); err != nil {
		return err
	}

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandlerWithRedis(employeeService, rdb)
	manpowerHandler := manpower.NewHandler(manpowerService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(20), 40))

	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler, rbacService, rdb)
		manpower.RegisterRoutes(api, manpowerHandler, rbacService)
	}

	return nil
}
