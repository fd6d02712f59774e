package announcement

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	announcements := rg.Group("/announcements")
	announcements.Use(middleware.AuthMiddleware())
	{
		announcements.GET("", middleware.Authorize(authz, "announcement", "read"), handler.GetAll)
		announcements.POST("", middleware.Authorize(authz, "announcement", "create"), handler.Create)
		announcements.PATCH("", middleware.Authorize(authz, "announcement", "update"), handler.Update)
		announcements.DELETE("/:id", middleware.Authorize(authz, "announcement", "delete"), handler.Delete)
	}
}
