package report

import (
	"github.com/pareverse/hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(rg *gin.RouterGroup, handler *Handler, authz middleware.AuthzService) {
	reports := rg.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("", middleware.Authorize(authz, "report", "read"), handler.GetAll)
		reports.GET("/employee/:id", middleware.Authorize(authz, "report", "read_self"), handler.GetByEmployee)
		reports.POST("", middleware.Authorize(authz, "report", "create"), handler.Create)
		reports.PATCH("", middleware.Authorize(authz, "report", "update"), handler.Update)
		reports.DELETE("/:id", middleware.Authorize(authz, "report", "delete"), handler.Delete)
	}
}
