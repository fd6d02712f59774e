package leavetype

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	types := rg.Group("/leaves/types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.Authorize(authz, "leavetype", "read"), handler.GetAll)
		types.POST("", middleware.Authorize(authz, "leavetype", "create"), handler.Create)
		types.DELETE("/:id", middleware.Authorize(authz, "leavetype", "delete"), handler.Delete)
	}
}
