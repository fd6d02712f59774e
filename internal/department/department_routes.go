package department

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	departments := rg.Group("/departments")
	departments.Use(middleware.AuthMiddleware())
	{
		departments.GET("", middleware.Authorize(authz, "department", "read"), handler.GetAll)
		departments.POST("", middleware.Authorize(authz, "department", "create"), handler.Create)
		departments.PATCH("", middleware.Authorize(authz, "department", "update"), handler.Update)
		departments.DELETE("/:id", middleware.Authorize(authz, "department", "delete"), handler.Delete)
	}
}
