package designation

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	designations := rg.Group("/designations")
	designations.Use(middleware.AuthMiddleware())
	{
		designations.GET("", middleware.Authorize(authz, "designation", "read"), handler.GetAll)
		designations.POST("", middleware.Authorize(authz, "designation", "create"), handler.Create)
		designations.PATCH("", middleware.Authorize(authz, "designation", "update"), handler.Update)
		designations.DELETE("/:id", middleware.Authorize(authz, "designation", "delete"), handler.Delete)
	}
}
