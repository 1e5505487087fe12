package manpower

import (
	"github.com/KapilArunesshSS/brighttechrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService middleware.RBACService) {
	manpower := r.Group("/manpower")
	manpower.Use(middleware.AuthMiddleware())
	{
		manpower.GET("", middleware.RBACAuthorize(rbacService, "manpower", "read"), h.GetAll)
		manpower.POST("", middleware.RBACAuthorize(rbacService, "manpower", "submit"), h.Submit)
		manpower.DELETE("", middleware.RBACAuthorize(rbacService, "manpower", "reset"), h.Reset)
		manpower.GET("/export/excel", middleware.RBACAuthorize(rbacService, "manpower", "export"), h.Export)
	}
}
