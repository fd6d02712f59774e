package meeting

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	meetings := rg.Group("/meetings")
	meetings.Use(middleware.AuthMiddleware())
	{
		meetings.GET("", middleware.Authorize(authz, "meeting", "read"), handler.GetAll)
		meetings.POST("", middleware.Authorize(authz, "meeting", "create"), handler.Create)
		meetings.PATCH("", middleware.Authorize(authz, "meeting", "update"), handler.Update)
		meetings.DELETE("/:id", middleware.Authorize(authz, "meeting", "delete"), handler.Delete)
	}
}
