package employee

import (
	"github.com/KapilArunesshSS/brighttechrms/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService, rdb *redis.Client) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employee", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employee", "create"), middleware.Idempotency(rdb), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employee", "update"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employee", "delete"), h.Delete)
		employees.GET("/export/excel", middleware.RBACAuthorize(rbacService, "employee", "export"), h.Export)
	}

	// Dashboard summary keeps its own path for the frontend contract
	summary := r.Group("/summary")
	summary.Use(middleware.AuthMiddleware())
	{
		summary.POST("", middleware.RBACAuthorize(rbacService, "summary", "read"), h.Summary)
	}
}
